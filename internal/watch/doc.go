// Package watch reports changes under a templates root in debounced batches.
//
// The root and each template directory directly below it are watched.
// Template directories created while watching are picked up automatically.
package watch
