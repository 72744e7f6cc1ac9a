// Package model provides the data structures shared by the kaprekar engine and its options.
// It defines the steps produced by the engine, the summary of a finished sequence,
// and the hooks an engine option can implement to observe the computation.
package model
