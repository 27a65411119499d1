package geo

// RussiaOutline is a simplified [lon, lat] ring of the main territory, used as
// the map background when regions render as circles and to fit the projection.
var RussiaOutline = [][2]float64{
	{28, 69.5}, {32, 69.5}, {37, 68}, {41, 67},
	{37, 66}, {36, 64.5}, {38, 63.5}, {42, 65},
	{48, 66}, {53, 67}, {58, 67.5},
	{65, 66.5}, {70, 67}, {70, 70}, {73, 72},
	{83, 73.5}, {95, 77.5}, {105, 76}, {115, 74},
	{125, 73}, {135, 71}, {145, 70.5}, {158, 70},
	{170, 66}, {177, 65}, {172, 61}, {165, 59},
	{160, 56}, {162, 53}, {155, 49}, {143, 48},
	{135, 44}, {131, 43},
	{128, 49}, {121, 50}, {115, 50}, {108, 50},
	{100, 50}, {97, 50}, {91, 50}, {86, 49},
	{83, 51}, {73, 54}, {67, 54}, {61, 54},
	{55, 52}, {52, 52.5}, {50, 46},
	{48, 44}, {46.5, 43}, {44.5, 42.5},
	{42.5, 43.5}, {40, 43.5}, {37.5, 44},
	{36, 45.5}, {34, 45}, {33, 44.5}, {33, 46},
	{37, 47}, {39, 48.5}, {39, 50}, {37, 51},
	{35, 52}, {32, 52.5}, {28, 53},
	{27, 55}, {28, 57}, {28, 59.5}, {30, 61},
	{29, 63}, {29, 66}, {28, 69.5},
}

// KaliningradOutline is the exclave ring.
var KaliningradOutline = [][2]float64{
	{19.5, 54.3}, {22.5, 54.3}, {22.5, 55.3}, {20, 55.3}, {19.5, 54.3},
}
