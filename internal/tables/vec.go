package tables

// Vector codebooks for the first coefficient decode phase. Vec4 codes four
// magnitudes per symbol, Vec2 two and Vec1 one; the highest symbol of each
// book is the escape to the next smaller vector size (or, for Vec1, to a
// raw large-value field). SymbolToVec4 and SymbolToVec2 pack the decoded
// magnitudes into nibbles.

var Vec4HuffBits = [127]uint8{
	2, 4, 4, 4, 4, 6, 6, 6, 6, 5, 5, 5, 5, 5, 5, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 10, 10, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 12, 12, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
}

var Vec4HuffCodes = [127]uint32{
	0x00000, 0x00004, 0x00005, 0x00006, 0x00007, 0x0002c, 0x0002d, 0x0002e,
	0x0002f, 0x00010, 0x00011, 0x00012, 0x00013, 0x00014, 0x00015, 0x00060,
	0x00061, 0x00062, 0x00063, 0x00064, 0x00065, 0x00066, 0x00067, 0x00068,
	0x00069, 0x0006a, 0x0006b, 0x0006c, 0x0006d, 0x0006e, 0x0006f, 0x00070,
	0x00071, 0x00072, 0x00073, 0x003e2, 0x003e3, 0x001d0, 0x001d1, 0x001d2,
	0x001d3, 0x001d4, 0x001d5, 0x001d6, 0x001d7, 0x001d8, 0x001d9, 0x001da,
	0x001db, 0x001dc, 0x001dd, 0x001de, 0x001df, 0x001e0, 0x001e1, 0x001e2,
	0x001e3, 0x001e4, 0x001e5, 0x001e6, 0x001e7, 0x001e8, 0x001e9, 0x001ea,
	0x001eb, 0x001ec, 0x001ed, 0x001ee, 0x001ef, 0x001f0, 0x00ffe, 0x00fff,
	0x007c8, 0x007c9, 0x007ca, 0x007cb, 0x007cc, 0x007cd, 0x007ce, 0x007cf,
	0x007d0, 0x007d1, 0x007d2, 0x007d3, 0x007d4, 0x007d5, 0x007d6, 0x007d7,
	0x007d8, 0x007d9, 0x007da, 0x007db, 0x007dc, 0x007dd, 0x007de, 0x007df,
	0x007e0, 0x007e1, 0x007e2, 0x007e3, 0x007e4, 0x007e5, 0x007e6, 0x007e7,
	0x007e8, 0x007e9, 0x007ea, 0x007eb, 0x007ec, 0x007ed, 0x007ee, 0x007ef,
	0x007f0, 0x007f1, 0x007f2, 0x007f3, 0x007f4, 0x007f5, 0x007f6, 0x007f7,
	0x007f8, 0x007f9, 0x007fa, 0x007fb, 0x007fc, 0x007fd, 0x007fe,
}

var SymbolToVec4 = [126]uint16{
	0x0000, 0x0001, 0x0010, 0x0100, 0x1000, 0x0002, 0x0011, 0x0020,
	0x0101, 0x0110, 0x0200, 0x1001, 0x1010, 0x1100, 0x2000, 0x0003,
	0x0012, 0x0021, 0x0030, 0x0102, 0x0111, 0x0120, 0x0201, 0x0210,
	0x0300, 0x1002, 0x1011, 0x1020, 0x1101, 0x1110, 0x1200, 0x2001,
	0x2010, 0x2100, 0x3000, 0x0004, 0x0013, 0x0022, 0x0031, 0x0040,
	0x0103, 0x0112, 0x0121, 0x0130, 0x0202, 0x0211, 0x0220, 0x0301,
	0x0310, 0x0400, 0x1003, 0x1012, 0x1021, 0x1030, 0x1102, 0x1111,
	0x1120, 0x1201, 0x1210, 0x1300, 0x2002, 0x2011, 0x2020, 0x2101,
	0x2110, 0x2200, 0x3001, 0x3010, 0x3100, 0x4000, 0x0005, 0x0014,
	0x0023, 0x0032, 0x0041, 0x0050, 0x0104, 0x0113, 0x0122, 0x0131,
	0x0140, 0x0203, 0x0212, 0x0221, 0x0230, 0x0302, 0x0311, 0x0320,
	0x0401, 0x0410, 0x0500, 0x1004, 0x1013, 0x1022, 0x1031, 0x1040,
	0x1103, 0x1112, 0x1121, 0x1130, 0x1202, 0x1211, 0x1220, 0x1301,
	0x1310, 0x1400, 0x2003, 0x2012, 0x2021, 0x2030, 0x2102, 0x2111,
	0x2120, 0x2201, 0x2210, 0x2300, 0x3002, 0x3011, 0x3020, 0x3101,
	0x3110, 0x3200, 0x4001, 0x4010, 0x4100, 0x5000,
}

var Vec2HuffBits = [137]uint8{
	4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 5, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 9, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 10, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11,
}

var Vec2HuffCodes = [137]uint32{
	0x00000, 0x00001, 0x00002, 0x00006, 0x00007, 0x00008, 0x00009, 0x0000a,
	0x0000b, 0x0000c, 0x0001c, 0x0001d, 0x0001e, 0x0001f, 0x0000d, 0x00020,
	0x00021, 0x00022, 0x00023, 0x00024, 0x00025, 0x00026, 0x00027, 0x00028,
	0x00029, 0x0002a, 0x0002b, 0x0002c, 0x0005a, 0x0005b, 0x0005c, 0x0005d,
	0x0005e, 0x0005f, 0x00060, 0x00061, 0x00062, 0x00063, 0x00064, 0x00065,
	0x00066, 0x00067, 0x00068, 0x00069, 0x0006a, 0x000d6, 0x000d7, 0x000d8,
	0x000d9, 0x000da, 0x000db, 0x000dc, 0x000dd, 0x000de, 0x000df, 0x001d4,
	0x000e0, 0x000e1, 0x000e2, 0x000e3, 0x000e4, 0x000e5, 0x000e6, 0x000e7,
	0x000e8, 0x000e9, 0x001d5, 0x001d6, 0x001d7, 0x001d8, 0x001d9, 0x001da,
	0x001db, 0x001dc, 0x001dd, 0x001de, 0x001df, 0x001e0, 0x003da, 0x001e1,
	0x001e2, 0x001e3, 0x001e4, 0x001e5, 0x001e6, 0x001e7, 0x001e8, 0x001e9,
	0x001ea, 0x001eb, 0x001ec, 0x003db, 0x003dc, 0x003dd, 0x003de, 0x003df,
	0x003e0, 0x003e1, 0x003e2, 0x003e3, 0x003e4, 0x003e5, 0x003e6, 0x003e7,
	0x003e8, 0x007ee, 0x003e9, 0x003ea, 0x003eb, 0x003ec, 0x003ed, 0x003ee,
	0x003ef, 0x003f0, 0x003f1, 0x003f2, 0x003f3, 0x003f4, 0x003f5, 0x003f6,
	0x007ef, 0x007f0, 0x007f1, 0x007f2, 0x007f3, 0x007f4, 0x007f5, 0x007f6,
	0x007f7, 0x007f8, 0x007f9, 0x007fa, 0x007fb, 0x007fc, 0x007fd, 0x007fe,
	0x007ff,
}

var SymbolToVec2 = [136]uint8{
	0x00, 0x01, 0x10, 0x02, 0x11, 0x20, 0x03, 0x12, 0x21, 0x30, 0x04, 0x13,
	0x22, 0x31, 0x40, 0x05, 0x14, 0x23, 0x32, 0x41, 0x50, 0x06, 0x15, 0x24,
	0x33, 0x42, 0x51, 0x60, 0x07, 0x16, 0x25, 0x34, 0x43, 0x52, 0x61, 0x70,
	0x08, 0x17, 0x26, 0x35, 0x44, 0x53, 0x62, 0x71, 0x80, 0x09, 0x18, 0x27,
	0x36, 0x45, 0x54, 0x63, 0x72, 0x81, 0x90, 0x0a, 0x19, 0x28, 0x37, 0x46,
	0x55, 0x64, 0x73, 0x82, 0x91, 0xa0, 0x0b, 0x1a, 0x29, 0x38, 0x47, 0x56,
	0x65, 0x74, 0x83, 0x92, 0xa1, 0xb0, 0x0c, 0x1b, 0x2a, 0x39, 0x48, 0x57,
	0x66, 0x75, 0x84, 0x93, 0xa2, 0xb1, 0xc0, 0x0d, 0x1c, 0x2b, 0x3a, 0x49,
	0x58, 0x67, 0x76, 0x85, 0x94, 0xa3, 0xb2, 0xc1, 0xd0, 0x0e, 0x1d, 0x2c,
	0x3b, 0x4a, 0x59, 0x68, 0x77, 0x86, 0x95, 0xa4, 0xb3, 0xc2, 0xd1, 0xe0,
	0x0f, 0x1e, 0x2d, 0x3c, 0x4b, 0x5a, 0x69, 0x78, 0x87, 0x96, 0xa5, 0xb4,
	0xc3, 0xd2, 0xe1, 0xf0,
}

var Vec1HuffBits = [101]uint8{
	2, 4, 4, 4, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 9,
}

var Vec1HuffCodes = [101]uint32{
	0x00000, 0x00004, 0x00005, 0x00006, 0x0000e, 0x0000f, 0x00010, 0x00011,
	0x00024, 0x00025, 0x00026, 0x00027, 0x00028, 0x00029, 0x0002a, 0x00056,
	0x00057, 0x00058, 0x00059, 0x0005a, 0x0005b, 0x0005c, 0x0005d, 0x0005e,
	0x0005f, 0x00060, 0x00061, 0x00062, 0x00063, 0x00064, 0x00065, 0x00066,
	0x000ce, 0x000cf, 0x000d0, 0x000d1, 0x000d2, 0x000d3, 0x000d4, 0x000d5,
	0x000d6, 0x000d7, 0x000d8, 0x000d9, 0x000da, 0x000db, 0x000dc, 0x000dd,
	0x000de, 0x000df, 0x000e0, 0x000e1, 0x000e2, 0x000e3, 0x000e4, 0x000e5,
	0x000e6, 0x000e7, 0x000e8, 0x000e9, 0x000ea, 0x000eb, 0x000ec, 0x001da,
	0x001db, 0x001dc, 0x001dd, 0x001de, 0x001df, 0x001e0, 0x001e1, 0x001e2,
	0x001e3, 0x001e4, 0x001e5, 0x001e6, 0x001e7, 0x001e8, 0x001e9, 0x001ea,
	0x001eb, 0x001ec, 0x001ed, 0x001ee, 0x001ef, 0x001f0, 0x001f1, 0x001f2,
	0x001f3, 0x001f4, 0x001f5, 0x001f6, 0x001f7, 0x001f8, 0x001f9, 0x001fa,
	0x001fb, 0x001fc, 0x001fd, 0x001fe, 0x001ff,
}
