package assets

// DefaultLayout is the built-in map. '#' is a wall, '.' is floor and '@'
// marks where the observer starts.
var DefaultLayout = []string{
	"...........#.............................................",
	"...........#........#....................................",
	".....................#...................................",
	"....####..............#..................................",
	".......#.......................#####################.....",
	".......#...........................................#.....",
	".......#...........##..............................#.....",
	"####........#......##.......@..##################..#.....",
	"...#...........................#................#..#.....",
	"...#............#..............#................#..#.....",
	".....................####......#..###############..#.....",
	"..............##.....#..#......#...................#.....",
	".....#.....#...##....####......#...................#.....",
	"......#....#....##.............#####################.....",
	"......#....#.....##......................................",
	".........................................................",
}
