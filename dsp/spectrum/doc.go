// Package spectrum turns sampled signals into one-sided magnitude spectra.
//
// The DFT itself is delegated to an FFT backend: algo-fft for power-of-two
// lengths and go-dsp for every other length. On top of that the package lays
// out bin frequencies in the conventional fftfreq order and keeps the
// positive half. A Goertzel bank measures individual bins without a full
// transform.
package spectrum
