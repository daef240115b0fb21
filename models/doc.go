// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
handlers and the API client.

Every type here mirrors the JSON wire format exactly; database rows that
never cross the wire (user agent, ip address on a submission) have no type
here at all.
*/
package models
