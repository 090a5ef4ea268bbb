package tables

// Run-level codebooks for the coefficient run phase. Two books exist; one
// bitstream bit per channel selects between them. In both, symbol 0 escapes
// to explicitly coded (run, level) fields, symbol 1 is the end-of-block
// marker and higher symbols map through the run and level tables.

var Coef0HuffBits = [272]uint8{
	4, 4, 3, 4, 5, 5, 5, 6, 6, 6, 6, 6, 7, 7, 7, 7,
	7, 7, 7, 7, 5, 6, 6, 7, 7, 7, 7, 8, 8, 8, 8, 8,
	8, 8, 9, 9, 9, 9, 5, 6, 7, 7, 8, 8, 8, 8, 9, 9,
	9, 9, 9, 9, 9, 9, 10, 10, 6, 7, 8, 8, 8, 9, 9, 9,
	9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 7, 8, 8, 9, 9, 9,
	9, 10, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 7, 8, 9, 9,
	9, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 7, 8,
	9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 12, 12,
	12, 12, 8, 9, 9, 10, 10, 10, 11, 11, 11, 11, 11, 11, 12, 12,
	12, 12, 12, 12, 8, 9, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12,
	12, 12, 12, 12, 12, 12, 8, 9, 10, 10, 11, 11, 11, 11, 11, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 8, 9, 10, 10, 11, 11, 11, 11,
	12, 12, 12, 12, 12, 12, 12, 12, 13, 13, 9, 10, 10, 11, 11, 11,
	11, 12, 12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 9, 10, 10, 11,
	11, 11, 12, 12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 9, 10,
	11, 11, 11, 12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13, 13,
}

var Coef0HuffCodes = [272]uint32{
	0x00002, 0x00003, 0x00000, 0x00004, 0x0000a, 0x0000b, 0x0000c, 0x0001e,
	0x0001f, 0x00020, 0x00021, 0x00022, 0x0004e, 0x0004f, 0x00050, 0x00051,
	0x00052, 0x00053, 0x00054, 0x00055, 0x0000d, 0x00023, 0x00024, 0x00056,
	0x00057, 0x00058, 0x00059, 0x000c0, 0x000c1, 0x000c2, 0x000c3, 0x000c4,
	0x000c5, 0x000c6, 0x001ae, 0x001af, 0x001b0, 0x001b1, 0x0000e, 0x00025,
	0x0005a, 0x0005b, 0x000c7, 0x000c8, 0x000c9, 0x000ca, 0x001b2, 0x001b3,
	0x001b4, 0x001b5, 0x001b6, 0x001b7, 0x001b8, 0x001b9, 0x003a4, 0x003a5,
	0x00026, 0x0005c, 0x000cb, 0x000cc, 0x000cd, 0x001ba, 0x001bb, 0x001bc,
	0x001bd, 0x001be, 0x003a6, 0x003a7, 0x003a8, 0x003a9, 0x003aa, 0x003ab,
	0x003ac, 0x003ad, 0x0005d, 0x000ce, 0x000cf, 0x001bf, 0x001c0, 0x001c1,
	0x001c2, 0x003ae, 0x003af, 0x003b0, 0x003b1, 0x003b2, 0x003b3, 0x003b4,
	0x003b5, 0x007a8, 0x007a9, 0x007aa, 0x0005e, 0x000d0, 0x001c3, 0x001c4,
	0x001c5, 0x003b6, 0x003b7, 0x003b8, 0x003b9, 0x003ba, 0x003bb, 0x007ab,
	0x007ac, 0x007ad, 0x007ae, 0x007af, 0x007b0, 0x007b1, 0x0005f, 0x000d1,
	0x001c6, 0x001c7, 0x003bc, 0x003bd, 0x003be, 0x003bf, 0x003c0, 0x007b2,
	0x007b3, 0x007b4, 0x007b5, 0x007b6, 0x007b7, 0x007b8, 0x007b9, 0x007ba,
	0x000d2, 0x001c8, 0x001c9, 0x003c1, 0x003c2, 0x003c3, 0x003c4, 0x007bb,
	0x007bc, 0x007bd, 0x007be, 0x007bf, 0x007c0, 0x007c1, 0x00fc0, 0x00fc1,
	0x00fc2, 0x00fc3, 0x000d3, 0x001ca, 0x001cb, 0x003c5, 0x003c6, 0x003c7,
	0x007c2, 0x007c3, 0x007c4, 0x007c5, 0x007c6, 0x007c7, 0x00fc4, 0x00fc5,
	0x00fc6, 0x00fc7, 0x00fc8, 0x00fc9, 0x000d4, 0x001cc, 0x003c8, 0x003c9,
	0x003ca, 0x007c8, 0x007c9, 0x007ca, 0x007cb, 0x007cc, 0x00fca, 0x00fcb,
	0x00fcc, 0x00fcd, 0x00fce, 0x00fcf, 0x00fd0, 0x00fd1, 0x000d5, 0x001cd,
	0x003cb, 0x003cc, 0x007cd, 0x007ce, 0x007cf, 0x007d0, 0x007d1, 0x00fd2,
	0x00fd3, 0x00fd4, 0x00fd5, 0x00fd6, 0x00fd7, 0x00fd8, 0x00fd9, 0x00fda,
	0x000d6, 0x001ce, 0x003cd, 0x003ce, 0x007d2, 0x007d3, 0x007d4, 0x007d5,
	0x00fdb, 0x00fdc, 0x00fdd, 0x00fde, 0x00fdf, 0x00fe0, 0x00fe1, 0x00fe2,
	0x01fee, 0x01fef, 0x001cf, 0x003cf, 0x003d0, 0x007d6, 0x007d7, 0x007d8,
	0x007d9, 0x00fe3, 0x00fe4, 0x00fe5, 0x00fe6, 0x00fe7, 0x00fe8, 0x00fe9,
	0x01ff0, 0x01ff1, 0x01ff2, 0x01ff3, 0x001d0, 0x003d1, 0x003d2, 0x007da,
	0x007db, 0x007dc, 0x00fea, 0x00feb, 0x00fec, 0x00fed, 0x00fee, 0x00fef,
	0x00ff0, 0x01ff4, 0x01ff5, 0x01ff6, 0x01ff7, 0x01ff8, 0x001d1, 0x003d3,
	0x007dd, 0x007de, 0x007df, 0x00ff1, 0x00ff2, 0x00ff3, 0x00ff4, 0x00ff5,
	0x00ff6, 0x01ff9, 0x01ffa, 0x01ffb, 0x01ffc, 0x01ffd, 0x01ffe, 0x01fff,
}

var Coef0Run = [272]uint16{
	0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5,
	6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3,
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1,
	2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
	14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3, 4, 5,
	6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1, 2, 3,
	4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 0, 1,
	2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
}

var Coef0Level = [272]int32{
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
}

var Coef1HuffBits = [228]uint8{
	4, 4, 3, 5, 6, 7, 4, 6, 7, 8, 5, 6, 8, 9, 5, 7,
	8, 9, 5, 7, 8, 9, 5, 8, 9, 9, 6, 8, 9, 10, 6, 8,
	9, 10, 6, 8, 9, 10, 6, 8, 9, 10, 6, 8, 10, 10, 6, 8,
	10, 11, 7, 9, 10, 11, 7, 9, 10, 11, 7, 9, 10, 11, 7, 9,
	10, 11, 7, 9, 10, 11, 7, 9, 10, 11, 7, 9, 10, 11, 7, 9,
	10, 11, 7, 9, 10, 11, 7, 9, 11, 11, 7, 9, 11, 11, 7, 9,
	11, 11, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10,
	11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10,
	11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10,
	11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10,
	11, 12, 8, 10, 11, 12, 8, 10, 11, 12, 8, 10, 12, 12, 8, 10,
	12, 12, 8, 10, 12, 12, 8, 10, 12, 12, 8, 10, 12, 12, 8, 10,
	12, 12, 9, 11, 12, 13, 9, 11, 12, 13, 9, 11, 12, 13, 9, 11,
	12, 13, 9, 11, 12, 13, 9, 11, 12, 13, 9, 11, 12, 13, 9, 11,
	12, 13, 9, 11,
}

var Coef1HuffCodes = [228]uint32{
	0x00002, 0x00003, 0x00000, 0x0000a, 0x0001e, 0x0004e, 0x00004, 0x0001f,
	0x0004f, 0x000bc, 0x0000b, 0x00020, 0x000bd, 0x001be, 0x0000c, 0x00050,
	0x000be, 0x001bf, 0x0000d, 0x00051, 0x000bf, 0x001c0, 0x0000e, 0x000c0,
	0x001c1, 0x001c2, 0x00021, 0x000c1, 0x001c3, 0x003b8, 0x00022, 0x000c2,
	0x001c4, 0x003b9, 0x00023, 0x000c3, 0x001c5, 0x003ba, 0x00024, 0x000c4,
	0x001c6, 0x003bb, 0x00025, 0x000c5, 0x003bc, 0x003bd, 0x00026, 0x000c6,
	0x003be, 0x007c0, 0x00052, 0x001c7, 0x003bf, 0x007c1, 0x00053, 0x001c8,
	0x003c0, 0x007c2, 0x00054, 0x001c9, 0x003c1, 0x007c3, 0x00055, 0x001ca,
	0x003c2, 0x007c4, 0x00056, 0x001cb, 0x003c3, 0x007c5, 0x00057, 0x001cc,
	0x003c4, 0x007c6, 0x00058, 0x001cd, 0x003c5, 0x007c7, 0x00059, 0x001ce,
	0x003c6, 0x007c8, 0x0005a, 0x001cf, 0x003c7, 0x007c9, 0x0005b, 0x001d0,
	0x007ca, 0x007cb, 0x0005c, 0x001d1, 0x007cc, 0x007cd, 0x0005d, 0x001d2,
	0x007ce, 0x007cf, 0x000c7, 0x003c8, 0x007d0, 0x00fd6, 0x000c8, 0x003c9,
	0x007d1, 0x00fd7, 0x000c9, 0x003ca, 0x007d2, 0x00fd8, 0x000ca, 0x003cb,
	0x007d3, 0x00fd9, 0x000cb, 0x003cc, 0x007d4, 0x00fda, 0x000cc, 0x003cd,
	0x007d5, 0x00fdb, 0x000cd, 0x003ce, 0x007d6, 0x00fdc, 0x000ce, 0x003cf,
	0x007d7, 0x00fdd, 0x000cf, 0x003d0, 0x007d8, 0x00fde, 0x000d0, 0x003d1,
	0x007d9, 0x00fdf, 0x000d1, 0x003d2, 0x007da, 0x00fe0, 0x000d2, 0x003d3,
	0x007db, 0x00fe1, 0x000d3, 0x003d4, 0x007dc, 0x00fe2, 0x000d4, 0x003d5,
	0x007dd, 0x00fe3, 0x000d5, 0x003d6, 0x007de, 0x00fe4, 0x000d6, 0x003d7,
	0x007df, 0x00fe5, 0x000d7, 0x003d8, 0x007e0, 0x00fe6, 0x000d8, 0x003d9,
	0x007e1, 0x00fe7, 0x000d9, 0x003da, 0x00fe8, 0x00fe9, 0x000da, 0x003db,
	0x00fea, 0x00feb, 0x000db, 0x003dc, 0x00fec, 0x00fed, 0x000dc, 0x003dd,
	0x00fee, 0x00fef, 0x000dd, 0x003de, 0x00ff0, 0x00ff1, 0x000de, 0x003df,
	0x00ff2, 0x00ff3, 0x001d3, 0x007e2, 0x00ff4, 0x01ff8, 0x001d4, 0x007e3,
	0x00ff5, 0x01ff9, 0x001d5, 0x007e4, 0x00ff6, 0x01ffa, 0x001d6, 0x007e5,
	0x00ff7, 0x01ffb, 0x001d7, 0x007e6, 0x00ff8, 0x01ffc, 0x001d8, 0x007e7,
	0x00ff9, 0x01ffd, 0x001d9, 0x007e8, 0x00ffa, 0x01ffe, 0x001da, 0x007e9,
	0x00ffb, 0x01fff, 0x001db, 0x007ea,
}

var Coef1Run = [228]uint16{
	0, 0, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1,
	2, 3, 0, 1,
}

var Coef1Level = [228]int32{
	0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4,
	4, 4, 5, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 7, 8, 8,
	8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12,
	12, 12, 13, 13, 13, 13, 14, 14, 14, 14, 15, 15, 15, 15, 16, 16,
	16, 16, 17, 17, 17, 17, 18, 18, 18, 18, 19, 19, 19, 19, 20, 20,
	20, 20, 21, 21, 21, 21, 22, 22, 22, 22, 23, 23, 23, 23, 24, 24,
	24, 24, 25, 25, 25, 25, 26, 26, 26, 26, 27, 27, 27, 27, 28, 28,
	28, 28, 29, 29, 29, 29, 30, 30, 30, 30, 31, 31, 31, 31, 32, 32,
	32, 32, 33, 33, 33, 33, 34, 34, 34, 34, 35, 35, 35, 35, 36, 36,
	36, 36, 37, 37, 37, 37, 38, 38, 38, 38, 39, 39, 39, 39, 40, 40,
	40, 40, 41, 41, 41, 41, 42, 42, 42, 42, 43, 43, 43, 43, 44, 44,
	44, 44, 45, 45, 45, 45, 46, 46, 46, 46, 47, 47, 47, 47, 48, 48,
	48, 48, 49, 49, 49, 49, 50, 50, 50, 50, 51, 51, 51, 51, 52, 52,
	52, 52, 53, 53, 53, 53, 54, 54, 54, 54, 55, 55, 55, 55, 56, 56,
	56, 56, 57, 57,
}
