// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the fixed list of votable AI tools. A Catalog is
immutable and ordered; both the server (for id validation and GET /tools)
and the widget (for base counts and rendering order) receive one explicitly
rather than reading a package-level list.
*/
package catalog
