// Package tline synthesizes the voltage seen at the driver end of an
// unterminated transmission line clocked by a square wave.
//
// The driven wave is the five-term odd-harmonic Fourier approximation of a
// square wave. The reflection returns after the round-trip delay 2L/v and is
// scaled by the reflection coefficient. [Synthesize] samples ten clock periods
// at 1000 samples per period and computes the one-sided magnitude spectrum of
// the sum.
package tline
