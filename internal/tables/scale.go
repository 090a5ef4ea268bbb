package tables

// Scale factor codebooks. ScaleHuff* covers the 121 DPCM delta symbols
// (value = symbol - 60). ScaleRLHuff* covers the run-level refinement used
// when resampled scale factors are corrected: symbol 0 escapes to a raw
// 14-bit field, symbol 1 terminates the band loop, higher symbols map to
// (run, level) pairs via ScaleRLRun and ScaleRLLevel.

var ScaleHuffBits = [121]uint8{
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 13, 13, 13, 13, 13,
	13, 13, 13, 12, 12, 12, 12, 12, 12, 12, 11, 11, 11, 11, 10, 10,
	10, 10, 9, 9, 9, 8, 8, 7, 6, 6, 4, 3, 1, 3, 4, 6,
	6, 7, 8, 8, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12,
	12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13, 13, 13, 13, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15, 15,
}

var ScaleHuffCodes = [121]uint32{
	0x07fe2, 0x07fe3, 0x07fe4, 0x07fe5, 0x07fe6, 0x07fe7, 0x07fe8, 0x07fe9,
	0x07fea, 0x07feb, 0x07fec, 0x07fed, 0x07fee, 0x07fef, 0x07ff0, 0x03fda,
	0x03fdb, 0x03fdc, 0x03fdd, 0x03fde, 0x03fdf, 0x03fe0, 0x03fe1, 0x03fe2,
	0x03fe3, 0x03fe4, 0x03fe5, 0x01fdc, 0x01fdd, 0x01fde, 0x01fdf, 0x01fe0,
	0x01fe1, 0x01fe2, 0x01fe3, 0x00fe0, 0x00fe1, 0x00fe2, 0x00fe3, 0x00fe4,
	0x00fe5, 0x00fe6, 0x007e8, 0x007e9, 0x007ea, 0x007eb, 0x003ec, 0x003ed,
	0x003ee, 0x003ef, 0x001f0, 0x001f1, 0x001f2, 0x000f4, 0x000f5, 0x00078,
	0x00038, 0x00039, 0x0000c, 0x00004, 0x00000, 0x00005, 0x0000d, 0x0003a,
	0x0003b, 0x00079, 0x000f6, 0x000f7, 0x001f3, 0x001f4, 0x001f5, 0x003f0,
	0x003f1, 0x003f2, 0x003f3, 0x007ec, 0x007ed, 0x007ee, 0x007ef, 0x00fe7,
	0x00fe8, 0x00fe9, 0x00fea, 0x00feb, 0x00fec, 0x00fed, 0x01fe4, 0x01fe5,
	0x01fe6, 0x01fe7, 0x01fe8, 0x01fe9, 0x01fea, 0x01feb, 0x01fec, 0x03fe6,
	0x03fe7, 0x03fe8, 0x03fe9, 0x03fea, 0x03feb, 0x03fec, 0x03fed, 0x03fee,
	0x03fef, 0x03ff0, 0x07ff1, 0x07ff2, 0x07ff3, 0x07ff4, 0x07ff5, 0x07ff6,
	0x07ff7, 0x07ff8, 0x07ff9, 0x07ffa, 0x07ffb, 0x07ffc, 0x07ffd, 0x07ffe,
	0x07fff,
}

var ScaleRLHuffBits = [74]uint8{
	5, 3, 3, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6,
	6, 6, 7, 7, 4, 5, 6, 6, 7, 7, 7, 8, 8, 8, 8, 8,
	8, 8, 8, 9, 9, 9, 6, 7, 7, 8, 8, 8, 8, 9, 9, 9,
	9, 9, 9, 9, 10, 10, 10, 10, 6, 7, 8, 8, 9, 9, 9, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 11, 11,
}

var ScaleRLHuffCodes = [74]uint32{
	0x0000e, 0x00000, 0x00001, 0x00004, 0x00005, 0x0000f, 0x00010, 0x00011,
	0x00012, 0x00013, 0x0002a, 0x0002b, 0x0002c, 0x0002d, 0x0002e, 0x0002f,
	0x00030, 0x00031, 0x0006c, 0x0006d, 0x00006, 0x00014, 0x00032, 0x00033,
	0x0006e, 0x0006f, 0x00070, 0x000e8, 0x000e9, 0x000ea, 0x000eb, 0x000ec,
	0x000ed, 0x000ee, 0x000ef, 0x001ec, 0x001ed, 0x001ee, 0x00034, 0x00071,
	0x00072, 0x000f0, 0x000f1, 0x000f2, 0x000f3, 0x001ef, 0x001f0, 0x001f1,
	0x001f2, 0x001f3, 0x001f4, 0x001f5, 0x003f2, 0x003f3, 0x003f4, 0x003f5,
	0x00035, 0x00073, 0x000f4, 0x000f5, 0x001f6, 0x001f7, 0x001f8, 0x003f6,
	0x003f7, 0x003f8, 0x003f9, 0x003fa, 0x003fb, 0x003fc, 0x003fd, 0x003fe,
	0x007fe, 0x007ff,
}

var ScaleRLRun = [74]uint16{
	0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
}

var ScaleRLLevel = [74]int32{
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
}
