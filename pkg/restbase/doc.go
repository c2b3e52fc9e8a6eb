// Package restbase provides the scaffolding for building typed clients
// against versioned HTTP-style APIs.
//
// # Overview
//
// The package is organized around four pieces. A Connector runs one
// request/response exchange through a fixed five-stage pipeline (encode,
// pre-process, dispatch, decode, post-process) with pluggable Codec and
// hook capabilities. A Resource owns exactly one Connector, resolves its
// environment-specific base URL, and classifies responses into success data
// or a domain error. A Registry maps (namespace, version) pairs to resource
// factories, and a Client binds one resource per requested namespace from
// it, failing fast on unregistered pairs. Finally, Intercept lets tests
// redirect individual operations to a Stub for a bounded scope without
// touching call sites.
//
// Building a client library
//
//	reg := restbase.NewRegistry(map[restbase.Key]restbase.ResourceFactory{
//	  {Namespace: "payments", Version: 1}: newPaymentsResource,
//	})
//
//	cli, err := restbase.NewClient(reg, restbase.Config{
//	  Token:     "secret",
//	  Test:      true,
//	  Versions:  map[string]int{"payments": 1},
//	  Transport: myTransport,
//	})
//
// A concrete example lives in the sweetpay package, which wires the JSON
// codec, an Authorization-token header builder, and the reference HTTP
// transport into checkout and subscription resources.
//
// # Errors
//
// Classification failures surface as *APIError carrying the offending
// status code, decoded payload, and raw response. Transport failures are
// wrapped into *TransportError; the underlying error stays reachable via
// errors.Is and errors.As. Construction problems are sentinel errors
// (ErrCodecRequired, ErrNoTestURL, ...) or *NotRegisteredError.
//
// # Interception
//
// Operations consult their context before running, via Call. Tests derive a
// scope with Intercept, configure the returned Stub (fixed return value or
// substitute error), and pass the derived context to the code under test:
//
//	ctx, stub := restbase.Intercept(ctx, "payments.create")
//	stub.Return(map[string]interface{}{"status": "OK"})
//
// The redirection is scoped to the derived context, so concurrent and
// nested scopes on the same operation cannot race, and nothing leaks once
// the scope's context is discarded.
package restbase
