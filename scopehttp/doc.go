/*
Package scopehttp provides HTTP middleware that runs each request inside a
[scope.RequestScope].

Example:

	package main

	import (
		"net/http"

		"github.com/sectrean/scope-kit"
		"github.com/sectrean/scope-kit/scopecontext"
		"github.com/sectrean/scope-kit/scopehttp"
	)

	func main() {
		reg, err := scope.NewRegistry()
		if err != nil {
			panic(err)
		}

		// Invoked once per request on first use.
		err = reg.Request().BindFactory(scope.KeyOf[*RequestID](), NewRequestID)
		if err != nil {
			panic(err)
		}

		mw, err := scopehttp.NewRequestScopeMiddleware(reg.Request())
		if err != nil {
			panic(err)
		}

		handler := func(w http.ResponseWriter, r *http.Request) {
			id := scopecontext.MustGet[*RequestID](r.Context())

			w.Write([]byte(id.String()))
		}

		http.Handle("/", mw(http.HandlerFunc(handler)))
		http.ListenAndServe(":8080", nil)
	}
*/
package scopehttp
