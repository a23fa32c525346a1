package faker

// Latitude and longitude bounds, also the defaults of Latitude and Longitude.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinates is a point in signed degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// CityPrefix returns a city prefix, e.g. "North".
func (g *Generator) CityPrefix() (string, error) {
	return call[string](g, "cityPrefix")
}

// CitySuffix returns a city suffix, e.g. "town".
func (g *Generator) CitySuffix() (string, error) {
	return call[string](g, "citySuffix")
}

// StreetSuffix returns a street suffix, e.g. "Avenue".
func (g *Generator) StreetSuffix() (string, error) {
	return call[string](g, "streetSuffix")
}

// BuildingNumber returns a building number, e.g. "791".
func (g *Generator) BuildingNumber() (string, error) {
	return call[string](g, "buildingNumber")
}

// City returns a city name, e.g. "Sashabury".
func (g *Generator) City() (string, error) {
	return call[string](g, "city")
}

// StreetName returns a street name, e.g. "Crist Parks".
func (g *Generator) StreetName() (string, error) {
	return call[string](g, "streetName")
}

// StreetAddress returns a street address, e.g. "791 Crist Parks".
func (g *Generator) StreetAddress() (string, error) {
	return call[string](g, "streetAddress")
}

// Postcode returns a postal code, e.g. "86039-9874".
func (g *Generator) Postcode() (string, error) {
	return call[string](g, "postcode")
}

// State returns a state or region, e.g. "IL".
func (g *Generator) State() (string, error) {
	return call[string](g, "state")
}

// Address returns a full postal address.
func (g *Generator) Address() (string, error) {
	return call[string](g, "address")
}

// Country returns a country name, e.g. "Japan".
func (g *Generator) Country() (string, error) {
	return call[string](g, "country")
}

// Latitude returns a latitude in [min, max], both within [-90, 90].
func (g *Generator) Latitude(min, max float64) (float64, error) {
	return call[float64](g, "latitude", min, max)
}

// Longitude returns a longitude in [min, max], both within [-180, 180].
func (g *Generator) Longitude(min, max float64) (float64, error) {
	return call[float64](g, "longitude", min, max)
}

// LocalCoordinates returns a point inside the locale's bounding box.
// Locales without a bounding box fail with ErrUnsupported.
func (g *Generator) LocalCoordinates() (Coordinates, error) {
	m, err := call[map[string]float64](g, "localCoordinates")
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Latitude: m["latitude"], Longitude: m["longitude"]}, nil
}
