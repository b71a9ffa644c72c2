// Package ndextest runs a fake NDEx server for tests.
//
// The server records every request and serves a small set of default routes
// that mirror NDEx wire shapes (admin status, group lookup, batch group
// fetch, network set membership, aspect metadata). Tests add their own
// routes with Handle or Stub before issuing calls:
//
//	srv := ndextest.New()
//	defer srv.Close()
//	srv.Stub(http.MethodGet, "/task/:id", http.StatusOK, model.Task{Status: model.TaskStatusCompleted})
//
// Routes must be registered before the first request is sent.
package ndextest
