package palette

// tolQualitative is Paul Tol's qualitative color palette, designed for
// colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var tolQualitative = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}
