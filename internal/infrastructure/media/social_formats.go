package media

// SocialFormat is a preset crop for sharing an uploaded image.
type SocialFormat struct {
	Key    string
	Label  string
	Width  int
	Height int
}

var SocialFormats = []SocialFormat{
	{Key: "ig_square", Label: "Instagram Square (1:1)", Width: 1080, Height: 1080},
	{Key: "ig_portrait", Label: "Instagram Portrait (4:5)", Width: 1080, Height: 1350},
	{Key: "tw_post", Label: "Twitter Post (16:9)", Width: 1200, Height: 675},
	{Key: "tw_header", Label: "Twitter Header (3:1)", Width: 1500, Height: 500},
	{Key: "fb_cover", Label: "Facebook Cover (205:78)", Width: 820, Height: 312},
}

func SocialFormatByKey(key string) (SocialFormat, bool) {
	for _, format := range SocialFormats {
		if format.Key == key {
			return format, true
		}
	}
	return SocialFormat{}, false
}
