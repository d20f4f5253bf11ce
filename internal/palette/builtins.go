package palette

type builtin struct {
	name           string
	category       Category
	colorblindSafe bool
	colors         []string
}

// builtins lists the shipped palettes. Hex values are the full-size
// ColorBrewer palettes (https://colorbrewer2.org) and Paul Tol's
// qualitative palette (https://personal.sron.nl/~pault/). Order
// matters: it is the search order for automatic palette selection.
var builtins = []builtin{
	// Qualitative.
	{"Accent", Qualitative, false, []string{
		"#7FC97F", "#BEAED4", "#FDC086", "#FFFF99",
		"#386CB0", "#F0027F", "#BF5B17", "#666666",
	}},
	{"Dark2", Qualitative, true, []string{
		"#1B9E77", "#D95F02", "#7570B3", "#E7298A",
		"#66A61E", "#E6AB02", "#A6761D", "#666666",
	}},
	{"Paired", Qualitative, true, []string{
		"#A6CEE3", "#1F78B4", "#B2DF8A", "#33A02C",
		"#FB9A99", "#E31A1C", "#FDBF6F", "#FF7F00",
		"#CAB2D6", "#6A3D9A", "#FFFF99", "#B15928",
	}},
	{"Pastel1", Qualitative, false, []string{
		"#FBB4AE", "#B3CDE3", "#CCEBC5", "#DECBE4",
		"#FED9A6", "#FFFFCC", "#E5D8BD", "#FDDAEC", "#F2F2F2",
	}},
	{"Pastel2", Qualitative, false, []string{
		"#B3E2CD", "#FDCDAC", "#CBD5E8", "#F4CAE4",
		"#E6F5C9", "#FFF2AE", "#F1E2CC", "#CCCCCC",
	}},
	{"Set1", Qualitative, false, []string{
		"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3",
		"#FF7F00", "#FFFF33", "#A65628", "#F781BF", "#999999",
	}},
	{"Set2", Qualitative, true, []string{
		"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3",
		"#A6D854", "#FFD92F", "#E5C494", "#B3B3B3",
	}},
	{"Set3", Qualitative, false, []string{
		"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072",
		"#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5",
		"#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F",
	}},
	{"Tol", Qualitative, true, tolQualitative},

	// Diverging.
	{"BrBG", Diverging, true, []string{
		"#543005", "#8C510A", "#BF812D", "#DFC27D", "#F6E8C3",
		"#F5F5F5", "#C7EAE5", "#80CDC1", "#35978F", "#01665E", "#003C30",
	}},
	{"PRGn", Diverging, true, []string{
		"#40004B", "#762A83", "#9970AB", "#C2A5CF", "#E7D4E8",
		"#F7F7F7", "#D9F0D3", "#A6DBA0", "#5AAE61", "#1B7837", "#00441B",
	}},
	{"PiYG", Diverging, true, []string{
		"#8E0152", "#C51B7D", "#DE77AE", "#F1B6DA", "#FDE0EF",
		"#F7F7F7", "#E6F5D0", "#B8E186", "#7FBC41", "#4D9221", "#276419",
	}},
	{"PuOr", Diverging, true, []string{
		"#7F3B08", "#B35806", "#E08214", "#FDB863", "#FEE0B6",
		"#F7F7F7", "#D8DAEB", "#B2ABD2", "#8073AC", "#542788", "#2D004B",
	}},
	{"RdBu", Diverging, true, []string{
		"#67001F", "#B2182B", "#D6604D", "#F4A582", "#FDDBC7",
		"#F7F7F7", "#D1E5F0", "#92C5DE", "#4393C3", "#2166AC", "#053061",
	}},
	{"RdYlBu", Diverging, true, []string{
		"#A50026", "#D73027", "#F46D43", "#FDAE61", "#FEE090",
		"#FFFFBF", "#E0F3F8", "#ABD9E9", "#74ADD1", "#4575B4", "#313695",
	}},
	{"Spectral", Diverging, false, []string{
		"#9E0142", "#D53E4F", "#F46D43", "#FDAE61", "#FEE08B",
		"#FFFFBF", "#E6F598", "#ABDDA4", "#66C2A5", "#3288BD", "#5E4FA2",
	}},

	// Sequential.
	{"Blues", Sequential, true, []string{
		"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6",
		"#4292C6", "#2171B5", "#08519C", "#08306B",
	}},
	{"Greens", Sequential, true, []string{
		"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B", "#74C476",
		"#41AB5D", "#238B45", "#006D2C", "#00441B",
	}},
	{"Greys", Sequential, true, []string{
		"#FFFFFF", "#F0F0F0", "#D9D9D9", "#BDBDBD", "#969696",
		"#737373", "#525252", "#252525", "#000000",
	}},
	{"Oranges", Sequential, true, []string{
		"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B", "#FD8D3C",
		"#F16913", "#D94801", "#A63603", "#7F2704",
	}},
	{"Purples", Sequential, true, []string{
		"#FCFBFD", "#EFEDF5", "#DADAEB", "#BCBDDC", "#9E9AC8",
		"#807DBA", "#6A51A3", "#54278F", "#3F007D",
	}},
	{"Reds", Sequential, true, []string{
		"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272", "#FB6A4A",
		"#EF3B2C", "#CB181D", "#A50F15", "#67000D",
	}},
	{"YlGnBu", Sequential, true, []string{
		"#FFFFD9", "#EDF8B1", "#C7E9B4", "#7FCDBB", "#41B6C4",
		"#1D91C0", "#225EA8", "#253494", "#081D58",
	}},
	{"YlOrRd", Sequential, true, []string{
		"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C", "#FD8D3C",
		"#FC4E2A", "#E31A1C", "#BD0026", "#800026",
	}},
}
