// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

Routes use Go 1.22+ method routing on the standard ServeMux. Every
application route is wrapped in the logging middleware, and the whole mux is
wrapped in CORS so the browser widget can call the API cross-origin.

	mux := router.NewRouter(conn, catalog.Default())
	http.ListenAndServe(":3321", mux)
*/
package router
