// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database - a key/value store built from a record file
//
// Files in the database directory:
//
//   body.rec       fixed size records: keyLen(2) key valueLen(2) value
//   index.leveldb  key -> record index (varint)
//
// The LevelDB index is mirrored in memory by an AVL tree so keys can
// be listed in order without touching the disk. Removing a key only
// marks its record as deleted; a background compactor rewrites the
// body once the proportion of deleted records passes a threshold,
// and Close compacts any remaining garbage.
package database
