// Package wmapro provides a pure Go WMA Pro (Windows Media Audio 9
// Professional) decoder.
//
// The decoder is integer-only: every stage from bitstream parsing through the
// inverse MDCT runs in fixed-point arithmetic, so results are bit-exact across
// platforms and no floating-point hardware is required.
//
// # Basic Usage
//
// Create a decoder from the stream parameters carried by the container
// (typically an ASF file or a Matroska/AVI track with the codec private data):
//
//	dec, err := wmapro.NewDecoder(wmapro.Config{
//	    ExtraData:  codecPrivate,
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BlockAlign: 4096,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dec.Close()
//
//	pcm := make([]int16, dec.SamplesPerFrame()*dec.OutputChannels()*4)
//	for _, pkt := range packets {
//	    n, _, err := dec.DecodePacket(pkt, pcm)
//	    if err != nil {
//	        continue // bad packet, decoder resynchronizes on the next one
//	    }
//	    // pcm[:n*dec.OutputChannels()] holds n interleaved samples per channel
//	}
//
// Frames may straddle packet boundaries; DecodePacket keeps the partial frame
// in an internal bit reservoir and emits it once the next packet supplies the
// missing bits. After a seek, call Flush to drop the reservoir and the
// overlap-add history.
//
// # Output Format
//
// Output is interleaved signed 16-bit PCM. Streams with more than two
// channels are downmixed to stereo; mono and stereo streams pass through
// unchanged.
//
// # Thread Safety
//
// Decoder instances are not safe for concurrent use. Each goroutine should
// have its own Decoder.
package wmapro
