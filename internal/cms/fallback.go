package cms

// fallbackHeader keeps the site chrome rendering when the backend is
// unreachable. Only the header gets this treatment; every other fetcher
// surfaces its error and the section renders an empty state.
var fallbackHeader = Header{
	Brand: BrandInfo{
		Name:    "Aurelia Studios",
		Tagline: "Weddings, portraits and events, told in light.",
	},
	Contact: ContactInfo{
		Phone:    "+91 98200 11223",
		WhatsApp: "+91 98200 11223",
		Email:    "hello@aureliastudios.in",
		Address:  "14 Linking Road, Bandra West, Mumbai 400050",
	},
	SocialMedia: []SocialLink{
		{Platform: "Instagram", URL: "https://www.instagram.com/aureliastudios", IconType: "instagram"},
		{Platform: "YouTube", URL: "https://www.youtube.com/@aureliastudios", IconType: "youtube"},
		{Platform: "Facebook", URL: "https://www.facebook.com/aureliastudios", IconType: "facebook"},
	},
}
