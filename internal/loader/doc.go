// Package loader provides manager.Loader implementations.
//
// Worker talks to an inference worker process over HTTP; the worker hosts
// the model libraries and keeps the weights on the device. Llama loads GGUF
// chat models in-process through llama.cpp and is only functional in
// binaries built with -tags=llama.
package loader
