package wmapro

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/bits"
	"github.com/llehouerou/go-wmapro/internal/tables"
	"github.com/llehouerou/go-wmapro/internal/vlc"
)

// getLargeVal reads an uncompressed coefficient with an adaptive length of
// 8, 16, 24 or 31 bits. Consumes up to 34 bits.
func getLargeVal(gb *bits.Reader) int32 {
	nbits := uint(8)
	if gb.Get1() != 0 {
		nbits += 8
		if gb.Get1() != 0 {
			nbits += 8
			if gb.Get1() != 0 {
				nbits += 7
			}
		}
	}
	return int32(gb.GetBits(nbits))
}

// runLevelDecode fills the remaining coefficients of a subframe from run
// level codes. Code 1 is end of block, the lowest code escapes to an
// uncompressed level with an optional run extension.
func (d *Decoder) runLevelDecode(table *vlc.Table, levels []int32, runs []uint16,
	dst []int64, offset, numCoefs, blockLen int, escLen uint) error {

	coefMask := blockLen - 1
	for ; offset < numCoefs; offset++ {
		code := table.Decode(d.gb)
		switch {
		case code > 1:
			offset += int(runs[code])
			sign := int32(d.gb.Get1()) - 1
			dst[offset&coefMask] = int64((levels[code]^sign)-sign) << 32
		case code == 1:
			// end of block
			return checkRunOverflow(offset, numCoefs)
		case code == 0:
			level := getLargeVal(d.gb)
			if d.gb.Get1() != 0 {
				if d.gb.Get1() != 0 {
					if d.gb.Get1() != 0 {
						return fmt.Errorf("%w: broken escape sequence", ErrInvalidData)
					}
					offset += int(d.gb.GetBits(escLen)) + 4
				} else {
					offset += int(d.gb.GetBits(2)) + 1
				}
			}
			sign := int32(d.gb.Get1()) - 1
			dst[offset&coefMask] = int64((level^sign)-sign) << 32
		default:
			return fmt.Errorf("%w: invalid coefficient code", ErrInvalidData)
		}
	}
	return checkRunOverflow(offset, numCoefs)
}

// checkRunOverflow rejects runs whose final skip went past the subframe. The
// end of block code may be omitted when the run ends exactly on the last
// coefficient.
func checkRunOverflow(offset, numCoefs int) error {
	if offset > numCoefs {
		return fmt.Errorf("%w: overflow in spectral run length decoding", ErrInvalidData)
	}
	return nil
}

// decodeCoeffs extracts the transform coefficients of one channel.
//
// Coefficients start out vector coded, four values per symbol with escapes
// down to pairs and single values. Once enough zeros accumulate (or the
// transmitted vector budget runs out) decoding switches to run level mode
// for the rest of the subframe.
func (d *Decoder) decodeCoeffs(c int) error {
	ci := &d.channel[c]
	coefs := ci.out[ci.coefOffset:]

	rlMode := false
	curCoeff := 0
	numZeros := 0

	vlcTable := int(d.gb.Get1())
	var runs []uint16
	var levels []int32
	if vlcTable != 0 {
		runs = tables.Coef1Run[:]
		levels = tables.Coef1Level[:]
	} else {
		runs = tables.Coef0Run[:]
		levels = tables.Coef0Level[:]
	}

	// vector coded coefficients, up to 167 bits per iteration when all
	// four values escape to large values
	for (d.transmitNumVecCoeffs || !rlMode) && curCoeff+3 < ci.numVecCoeffs {
		var vals [4]int32

		if idx := vec4VLC.Decode(d.gb); idx == vec4Escape {
			for i := 0; i < 4; i += 2 {
				if idx2 := vec2VLC.Decode(d.gb); idx2 == vec2Escape {
					v0 := vec1VLC.Decode(d.gb)
					if v0 < 0 {
						return fmt.Errorf("%w: invalid coefficient vector code", ErrInvalidData)
					}
					vals[i] = int32(v0)
					if v0 == vec1Escape {
						vals[i] += getLargeVal(d.gb)
					}
					v1 := vec1VLC.Decode(d.gb)
					if v1 < 0 {
						return fmt.Errorf("%w: invalid coefficient vector code", ErrInvalidData)
					}
					vals[i+1] = int32(v1)
					if v1 == vec1Escape {
						vals[i+1] += getLargeVal(d.gb)
					}
				} else if idx2 < 0 {
					return fmt.Errorf("%w: invalid coefficient vector code", ErrInvalidData)
				} else {
					vals[i] = int32(tables.SymbolToVec2[idx2] >> 4)
					vals[i+1] = int32(tables.SymbolToVec2[idx2] & 0xf)
				}
			}
		} else if idx < 0 {
			return fmt.Errorf("%w: invalid coefficient vector code", ErrInvalidData)
		} else {
			vals[0] = int32(tables.SymbolToVec4[idx] >> 12)
			vals[1] = int32(tables.SymbolToVec4[idx] >> 8 & 0xf)
			vals[2] = int32(tables.SymbolToVec4[idx] >> 4 & 0xf)
			vals[3] = int32(tables.SymbolToVec4[idx] & 0xf)
		}

		// decode signs
		for i := 0; i < 4; i++ {
			if vals[i] != 0 {
				sign := int32(d.gb.Get1()) - 1
				coefs[curCoeff] = int64((vals[i]^sign)-sign) << 32
				numZeros = 0
			} else {
				coefs[curCoeff] = 0
				// switch to run level mode when subframe_len/256
				// zeros were found in a row
				numZeros++
				if numZeros > d.subframeLen>>8 {
					rlMode = true
				}
			}
			curCoeff++
		}
	}

	// run level coded tail
	if curCoeff < d.subframeLen {
		for i := curCoeff; i < d.subframeLen; i++ {
			coefs[i] = 0
		}
		if err := d.runLevelDecode(coefVLC[vlcTable], levels, runs,
			coefs, curCoeff, d.subframeLen, d.subframeLen, d.escLen); err != nil {
			return err
		}
	}

	return nil
}
