package fixed

// atanTable holds atan(2^-i) as 0.32 fractions of pi (pi = 0xffffffff/2),
// one entry per CORDIC iteration.
var atanTable = [32]uint32{
	0x1fffffff, 0x12e4051d, 0x09fb385b, 0x051111d4,
	0x028b0d43, 0x0145d7e1, 0x00a2f61e, 0x00517c55,
	0x0028be53, 0x00145f2e, 0x000a2f98, 0x000517cc,
	0x00028be6, 0x000145f3, 0x0000a2f9, 0x0000517c,
	0x000028be, 0x0000145f, 0x00000a2f, 0x00000517,
	0x0000028b, 0x00000145, 0x000000a2, 0x00000051,
	0x00000028, 0x00000014, 0x0000000a, 0x00000005,
	0x00000002, 0x00000001, 0x00000000, 0x00000000,
}
