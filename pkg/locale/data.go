package locale

// Data is the merged provider data of one locale.
// Empty lists mean the locale has no data for that concern.
type Data struct {
	Locale   string   `yaml:"locale"`
	Parent   string   `yaml:"parent,omitempty"`
	Person   Person   `yaml:"person"`
	Address  Address  `yaml:"address"`
	Phone    Phone    `yaml:"phone"`
	Company  Company  `yaml:"company"`
	Internet Internet `yaml:"internet"`
	Text     Text     `yaml:"text"`
	Payment  Payment  `yaml:"payment"`
	ISO      ISO      `yaml:"iso"`
	Blood    Blood    `yaml:"blood"`
}

// Person holds name data.
type Person struct {
	FirstNamesMale    []string `yaml:"first_names_male"`
	FirstNamesFemale  []string `yaml:"first_names_female"`
	LastNames         []string `yaml:"last_names"`
	TitlesMale        []string `yaml:"titles_male"`
	TitlesFemale      []string `yaml:"titles_female"`
	NameFormatsMale   []string `yaml:"name_formats_male"`
	NameFormatsFemale []string `yaml:"name_formats_female"`
}

// Address holds postal address data.
type Address struct {
	CityPrefixes          []string     `yaml:"city_prefixes"`
	CitySuffixes          []string     `yaml:"city_suffixes"`
	CityFormats           []string     `yaml:"city_formats"`
	StreetSuffixes        []string     `yaml:"street_suffixes"`
	StreetNameFormats     []string     `yaml:"street_name_formats"`
	StreetAddressFormats  []string     `yaml:"street_address_formats"`
	BuildingNumberFormats []string     `yaml:"building_number_formats"`
	PostcodeFormats       []string     `yaml:"postcode_formats"`
	AddressFormats        []string     `yaml:"address_formats"`
	States                []string     `yaml:"states"`
	Countries             []string     `yaml:"countries"`
	Coordinates           *Coordinates `yaml:"coordinates,omitempty"`
}

// Coordinates is a bounding box used for local coordinates.
type Coordinates struct {
	LatMin float64 `yaml:"lat_min"`
	LatMax float64 `yaml:"lat_max"`
	LonMin float64 `yaml:"lon_min"`
	LonMax float64 `yaml:"lon_max"`
}

// Phone holds phone number formats.
type Phone struct {
	Formats     []string `yaml:"formats"`
	E164Formats []string `yaml:"e164_formats"`
}

// Company holds company data.
type Company struct {
	Suffixes  []string `yaml:"suffixes"`
	Formats   []string `yaml:"formats"`
	JobTitles []string `yaml:"job_titles"`
}

// Internet holds email, user name and URL data.
type Internet struct {
	FreeEmailDomains []string `yaml:"free_email_domains"`
	SafeEmailDomains []string `yaml:"safe_email_domains"`
	TLDs             []string `yaml:"tlds"`
	UserNameFormats  []string `yaml:"user_name_formats"`
	URLFormats       []string `yaml:"url_formats"`
}

// Text holds the word list and the optional real-text corpus.
type Text struct {
	Words    []string `yaml:"words"`
	RealText string   `yaml:"real_text"`
}

// Payment holds payment data.
type Payment struct {
	CardTypes   []string `yaml:"card_types"`
	IBANCountry string   `yaml:"iban_country"`
	SwiftRegion string   `yaml:"swift_region"`
}

// ISO holds ISO 3166 and ISO 639 code lists.
type ISO struct {
	Countries []string `yaml:"countries"`
	Languages []string `yaml:"languages"`
}

// Blood holds blood type data.
type Blood struct {
	Types []string `yaml:"types"`
	Rh    []string `yaml:"rh"`
}
