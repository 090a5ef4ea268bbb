package tables

// Default decorrelation matrices for 3 to 6 coupled channels, row-major Q31.
// Rows form an orthonormal cosine basis so the inverse transform preserves
// signal energy when the bitstream does not supply rotation angles.

var defaultDecorrelation3 = [9]int32{
	1239850262, 1239850262, 1239850262,
	1518500250, 0, -1518500250,
	876706528, -1753413056, 876706528,
}

var defaultDecorrelation4 = [16]int32{
	1073741824, 1073741824, 1073741824, 1073741824,
	1402911301, 581104888, -581104888, -1402911301,
	1073741824, -1073741824, -1073741824, 1073741824,
	581104888, -1402911301, 1402911301, -581104888,
}

var defaultDecorrelation5 = [25]int32{
	960383883, 960383883, 960383883, 960383883, 960383883,
	1291713465, 798322825, 0, -798322825, -1291713465,
	1098797103, -419703147, -1358187913, -419703147, 1098797103,
	798322825, -1291713465, 0, 1291713465, -798322825,
	419703147, -1098797103, 1358187913, -1098797103, 419703147,
}

var defaultDecorrelation6 = [36]int32{
	876706528, 876706528, 876706528, 876706528, 876706528, 876706528,
	1197603389, 876706528, 320896861, -320896861, -876706528, -1197603389,
	1073741824, 0, -1073741824, -1073741824, 0, 1073741824,
	876706528, -876706528, -876706528, 876706528, 876706528, -876706528,
	619925131, -1239850262, 619925131, 619925131, -1239850262, 619925131,
	320896861, -876706528, 1197603389, -1197603389, 876706528, -320896861,
}

// DefaultDecorrelation maps a coupled channel count to its matrix.
// Entries below 3 are nil; 2-channel groups use fixed rotation constants.
var DefaultDecorrelation = [7][]int32{
	nil,
	nil,
	nil,
	defaultDecorrelation3[:],
	defaultDecorrelation4[:],
	defaultDecorrelation5[:],
	defaultDecorrelation6[:],
}
