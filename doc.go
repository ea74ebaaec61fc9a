// Package sendsculpt is a client for the SendSculpt transactional email API.
//
// The client validates a send request, converts attachments to base64,
// and posts the request as JSON to the /send endpoint. Each call makes a
// single HTTP round trip. There is no retry, batching or background work.
//
// # Quick Start
//
//	client, err := sendsculpt.New(os.Getenv("SENDSCULPT_API_KEY"),
//	    sendsculpt.WithEnvironment(sendsculpt.EnvironmentSandbox),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Send(ctx, &sendsculpt.SendEmailRequest{
//	    To:        []string{"user@example.com"},
//	    Subject:   "Welcome",
//	    FromEmail: "noreply@example.com",
//	    BodyText:  sendsculpt.String("Hello!"),
//	})
//	if err != nil {
//	    return err
//	}
//	log.Println(res.MessageID(), res.Status())
//
// # Templates
//
// Set TemplateID to render a server-side template, with TemplateData as its
// variables. TemplateData without TemplateID, or TemplateID combined with
// BodyHTML/BodyText, is rejected with ErrConfiguration before any request.
//
// # Attachments
//
// Each Attachment takes exactly one content source:
//
//	sendsculpt.Attachment{Filename: "a.pdf", MimeType: "application/pdf", Source: sendsculpt.Base64Content(encoded)}
//	sendsculpt.Attachment{Filename: "b.csv", Source: sendsculpt.Bytes(data)}
//	sendsculpt.Attachment{Source: sendsculpt.File("/tmp/report.pdf")}
//
// Files are read fully into memory at send time. A missing file fails with
// ErrResourceNotFound. An empty MimeType is detected from the content, and an
// empty Filename on a File source defaults to the file's base name.
//
// # Configuration
//
// Config carries env tags for caarlos0/env:
//
//	var cfg sendsculpt.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//	client, err := sendsculpt.NewFromConfig(cfg, sendsculpt.WithLogger(log))
//
// # Request IDs
//
// Every request carries an X-Request-ID header. It is taken from the context
// (see ContextWithRequestID) or generated. Use RequestIDExtractor with
// logger.New to tag application logs with the same ID.
//
// # Errors
//
//   - ErrConfiguration: invalid client setup or request (ErrMissingAPIKey and ErrInvalidEnvironment wrap it)
//   - ErrResourceNotFound: attachment file does not exist
//   - ErrHTTP: non-2xx response; errors.As to *HTTPError for status and body
//   - ErrDecodeFailed: success response is not a JSON object
//
// Transport errors (DNS, TLS, timeouts, cancellation) come back unwrapped from
// the underlying http.Client.
package sendsculpt
