// Package ndex is a typed client for the NDEx network exchange REST API.
//
// A Client groups the server's endpoints by resource:
//
//	client, err := ndex.New(httpclient.Config{
//		BaseURL: "https://www.ndexbio.org/v2",
//		Auth:    httpclient.BasicAuth("alice", "secret"),
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close(ctx)
//
//	status, err := client.Admin().GetStatus(ctx, model.StatusFormatShort)
//
// Every call builds one httpclient.Request and runs it on the transport
// selected by Config.Backend. Failed calls return the typed errors of the
// errors package, so callers branch with errors.IsNotFound and friends.
package ndex
