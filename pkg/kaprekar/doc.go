// Package kaprekar provides an engine for Kaprekar's routine on 4-digit numbers.
//
// Each iteration arranges the digits of the current value in descending and ascending order and subtracts the
// second arrangement from the first. For every 4-digit value with at least two distinct digits the routine reaches
// 6174, Kaprekar's constant, within seven iterations, and 6174 maps to itself.
//
// The engine never holds hidden state between calls. A Sequence is a value owned by the caller: Start creates it,
// StepOnce returns a new Sequence one step longer, and RunToFixpoint materialises the whole run at once. Both modes
// share the same code path, so options such as the terminal display step behave identically in manual and
// run-all mode.
//
// Engine options implementing model.EngineOption observe every computed step. The measure and drawer packages
// provide options that collect timings and draw the transition graph of the observed values.
package kaprekar
