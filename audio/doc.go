// SPDX-License-Identifier: EPL-2.0

// Package audio defines the Source interface shared by consumers of decoded audio.
//
// A Source yields interleaved float32 samples normalised to [-1.0, 1.0],
// one frame (a sample for every channel) at a time:
//
//	buf := make([]float32, src.BufSize())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// ReadSamples rejects destination slices whose length is not a multiple of
// the channel count with ErrInvalidDstSize, so a read never splits a frame.
package audio
