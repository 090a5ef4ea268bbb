package tables

// Pow10Mant[i] and Pow10Exp[i] split 10^(i/20) into a Q31 mantissa in
// [0.5, 1) and a power-of-two exponent, so band exponents expressed in the
// base-20 log domain translate into a fixed-point multiplier plus a shift.
var Pow10Mant = [20]int32{
	1073741824, 1204758142, 1351760868, 1516700640,
	1701766107, 1909412977, 2142396597, 1201904259,
	1348558759, 1513107815, 1697734891, 1904889879,
	2137321597, 1199057137, 1345364236, 1509523501,
	1693713225, 1900377495, 2132258619, 1196216760,
}

var Pow10Exp = [20]int8{
	1, 1, 1, 1, 1, 1, 1, 2, 2, 2,
	2, 2, 2, 3, 3, 3, 3, 3, 3, 4,
}
