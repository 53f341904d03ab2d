package main

// General API documentation for swaggo. Run `swag init -g cmd/genhost/docs.go`
// to regenerate ./docs.
//
// @title           genhost API
// @version         1.0
// @description     HTTP API for speech, chat, image and video generation with on-demand model swapping.
//
// @contact.name   genhost maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
