// Package printer dispatches print jobs to a network-attached ePOS printer.
//
// A Client performs exactly one HTTP exchange per print job: the document's
// rendered command stream is wrapped in the transport envelope, posted to the
// device's fixed service endpoint, and the reply is decoded into a
// status.Response. There is no retry, batching or connection management beyond
// what the standard HTTP client provides; retry policy is a caller concern.
//
// Multiple jobs may be dispatched concurrently through the same Client. The
// client imposes no ordering between them; if the device cannot accept
// concurrent jobs, serialize the Print calls.
//
// Usage Example:
//
//	cfg, _ := printer.NewConfig("http://192.168.1.194",
//	    printer.WithDeviceID("local_printer"),
//	    printer.WithDeviceTimeout(10000),
//	)
//	client, _ := printer.NewClient(cfg)
//
//	doc := epos.NewDocument(epos.ModeNormal)
//	_ = doc.Add(&epos.Text{Data: "hello\n"})
//	_ = doc.Add(&epos.Cut{Type: epos.CutFeed})
//
//	resp, err := client.Print(ctx, doc)
package printer
