// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application itself; this package only
// defines the settings it reads: listen port, API key, the upload body limit
// and the read timeout applied to map uploads.
//
// # Usage
//
//	app := fiber.New(fiber.Config{
//	    BodyLimit:   cfg.Server.BodyLimit(),
//	    ReadTimeout: cfg.Server.ReadTimeout(),
//	})
//	app.Listen(cfg.Server.Address())
package server
