package main

// General API documentation for swaggo. Run `swag init -g cmd/ocrd/docs.go` to regenerate docs.
//
// @title           ocrd API
// @version         1.0
// @description     HTTP API for OCR on uploaded images.
//
// @contact.name   ocrd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
