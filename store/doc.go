// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the voting board as a single JSON document.

# Document

	{
	  "restaurants": {
	    "Pizza Place": {
	      "timestamp": "2025-03-14T12:00:00Z",
	      "owner": "Alice",
	      "votes": {"<@U1>": 7, "<@U2>": 9},
	      "average": 8.0
	    }
	  }
	}

Restaurants and votes keep document order in both directions; Decode walks
the object with gjson and Encode writes entries in board order, then
pretty-prints.

# Blobs

A Blob is one stored document with Exists, Read, and Write. Every write
replaces the whole document. Backends:

  - FileBlob: local file, replaced through temp file + rename
  - S3Blob: one S3 object (aws-sdk-go-v2)
  - SQLBlob: one row of the document table (SQLite or PostgreSQL)
  - RedisBlob: one Redis key
  - MemoryBlob: in-process, for tests

OpenBlob picks the backend from configuration.
*/
package store
