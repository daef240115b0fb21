// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package localstore is a durable keyed JSON store with browser-localStorage
semantics: each key maps to one small JSON file, missing or corrupt entries
read as absent, and writes never fail loudly. The widget uses it to keep
like records and the submitted-email set across sessions on one device.
*/
package localstore
