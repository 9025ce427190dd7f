// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, chat, and response types.

# Domain Types

  - Restaurant: a voting candidate (timestamp, owner, votes, cached average)
  - Votes: ordered voter → score list with overwrite-on-repeat semantics
  - Vote: a single voter's score

Restaurant and Votes implement json.Marshaler and json.Unmarshaler so that the
stored document keeps the order voters voted in:

	{
	  "timestamp": "2025-03-14T12:00:00Z",
	  "owner": "Alice",
	  "votes": {"<@U1>": 7, "<@U2>": 9},
	  "average": 8.0
	}

The average is omitted when it has not been computed.

# Chat Types

  - Event: inbound message (text, channel, user, token)
  - Message: outbound reply (text and/or attachments)
  - Card: colored attachment (title, text, color, footer)

# Response Types

  - RestaurantsResponse: rendered cards for GET /restaurants
  - ErrorResponse: error, message
*/
package models
