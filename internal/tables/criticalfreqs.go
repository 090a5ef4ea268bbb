package tables

// CriticalFreqs holds the upper edges of the Bark critical bands in Hz.
// Scale factor band offsets for every block size derive from these.
var CriticalFreqs = [25]uint16{
	100, 200, 300, 400, 510, 630, 770, 920,
	1080, 1270, 1480, 1720, 2000, 2320, 2700, 3150,
	3700, 4400, 5300, 6400, 7700, 9500, 12000, 15500,
	24500,
}
