// Photomap - Geotagged Photo Location Viewer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/photomap

/*
Package websocket pushes change notifications to open map pages.

The Hub owns the set of connected clients and fans out messages from a
single goroutine (RunWithContext). Pages listen for two message types:

	{"type":"reload","data":{"generation":3}}
	{"type":"place_added","data":{"record":{...},"generation":4}}

and re-fetch markers when either arrives. Clients may send
{"type":"ping"} and receive {"type":"pong"}.

A slow client whose send buffer fills is disconnected rather than allowed
to stall the hub. Broadcast never blocks; when the hub's queue is full the
message is dropped with a warning, since the next reload supersedes it.
*/
package websocket
