// Package zodiac holds the fixed sidereal lookup tables shared by the chart,
// panchang, dasha and match packages. Everything here is static data: loaded
// once, read concurrently, never mutated.
package zodiac

// Counts of the fixed zodiac divisions.
const (
	SignCount      = 12
	NakshatraCount = 27
	PadasPerNak    = 4

	SignSpan      = 360.0 / SignCount      // 30 degrees
	NakshatraSpan = 360.0 / NakshatraCount // 13 degrees 20 minutes
)

// Planet identifies a graha tracked by the engine.
type Planet int

// The nine grahas in traditional order.
const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
)

var planetNames = [...]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Rahu", "Ketu"}

func (p Planet) String() string {
	if p < Sun || p > Ketu {
		return "Unknown"
	}
	return planetNames[p]
}

// SignType is the classical mobility of a sign, used by divisional charts.
type SignType int

// Movable, fixed and dual signs repeat in that order around the zodiac.
const (
	Movable SignType = iota
	Fixed
	Dual
)

// SignNames lists the 12 rashis from Aries.
var SignNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignLords maps each sign to its ruling planet.
var SignLords = [SignCount]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// SignTypes maps each sign to its mobility class.
var SignTypes = [SignCount]SignType{
	Movable, Fixed, Dual, Movable, Fixed, Dual,
	Movable, Fixed, Dual, Movable, Fixed, Dual,
}

// NakshatraNames lists the 27 lunar mansions from Ashwini.
var NakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraLords maps each nakshatra to its Vimshottari lord: the nine-lord
// cycle starting at Ketu repeats three times across the 27 mansions.
var NakshatraLords = [NakshatraCount]Planet{
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
}

// Varna is the caste rank of a sign, ordered best to last.
type Varna int

// Varna ranks. Lower value outranks higher.
const (
	Brahmin Varna = iota
	Kshatriya
	Vaisya
	Shudra
)

var varnaNames = [...]string{"Brahmin", "Kshatriya", "Vaisya", "Shudra"}

func (v Varna) String() string { return varnaNames[v] }

// SignVarnas assigns each sign its varna by element: water signs are
// Brahmin, fire Kshatriya, earth Vaisya, air Shudra.
var SignVarnas = [SignCount]Varna{
	Kshatriya, Vaisya, Shudra, Brahmin, Kshatriya, Vaisya,
	Shudra, Brahmin, Kshatriya, Vaisya, Shudra, Brahmin,
}

// VashyaClass is the animal-dominance category of a sign.
type VashyaClass int

// Vashya categories.
const (
	Chatushpada VashyaClass = iota // quadruped
	Manav                          // human
	Jalchar                        // aquatic
	Vanchar                        // wild
	Keet                           // insect
)

var vashyaNames = [...]string{"Chatushpada", "Manav", "Jalchar", "Vanchar", "Keet"}

func (v VashyaClass) String() string { return vashyaNames[v] }

// SignVashyas assigns each sign its vashya category.
var SignVashyas = [SignCount]VashyaClass{
	Chatushpada, Chatushpada, Manav, Jalchar, Vanchar, Manav,
	Manav, Keet, Manav, Jalchar, Manav, Jalchar,
}

// YoniAnimal is the symbolic animal of a nakshatra.
type YoniAnimal int

// The fourteen yoni animals.
const (
	Horse YoniAnimal = iota
	Elephant
	Sheep
	Snake
	Dog
	Cat
	Rat
	Cow
	Buffalo
	Tiger
	Deer
	Monkey
	Mongoose
	Lion
)

var yoniNames = [...]string{
	"Horse", "Elephant", "Sheep", "Snake", "Dog", "Cat", "Rat",
	"Cow", "Buffalo", "Tiger", "Deer", "Monkey", "Mongoose", "Lion",
}

func (y YoniAnimal) String() string { return yoniNames[y] }

// NakshatraYonis maps the 27 nakshatras onto the 14 yoni animals.
var NakshatraYonis = [NakshatraCount]YoniAnimal{
	Horse, Elephant, Sheep, Snake, Snake, Dog,
	Cat, Sheep, Cat, Rat, Rat, Cow,
	Buffalo, Tiger, Buffalo, Tiger, Deer, Deer,
	Dog, Monkey, Mongoose, Monkey, Lion, Horse,
	Lion, Cow, Elephant,
}

// yoniFriends lists the mutually friendly animal pairs that score 3.
var yoniFriends = map[[2]YoniAnimal]bool{
	{Cow, Buffalo}:    true,
	{Horse, Elephant}: true,
	{Dog, Deer}:       true,
	{Sheep, Monkey}:   true,
	{Tiger, Lion}:     true,
}

// YoniFriendly reports whether two distinct yoni animals are a friendly pair.
func YoniFriendly(a, b YoniAnimal) bool {
	if a > b {
		a, b = b, a
	}
	return yoniFriends[[2]YoniAnimal{a, b}]
}

// Gana is the temperament class of a nakshatra.
type Gana int

// Gana categories.
const (
	Deva Gana = iota
	Manushya
	Rakshasa
)

var ganaNames = [...]string{"Deva", "Manushya", "Rakshasa"}

func (g Gana) String() string { return ganaNames[g] }

// NakshatraGanas maps each nakshatra to its gana.
var NakshatraGanas = [NakshatraCount]Gana{
	Deva, Manushya, Rakshasa, Manushya, Deva, Manushya,
	Deva, Deva, Rakshasa, Rakshasa, Manushya, Manushya,
	Deva, Rakshasa, Deva, Rakshasa, Deva, Rakshasa,
	Rakshasa, Manushya, Manushya, Deva, Rakshasa, Rakshasa,
	Manushya, Manushya, Deva,
}

// Nadi is the constitutional class of a nakshatra. The assignment follows
// the nakshatra index with period 3.
type Nadi int

// Nadi categories.
const (
	Adi Nadi = iota
	Madhya
	Antya
)

var nadiNames = [...]string{"Adi", "Madhya", "Antya"}

func (n Nadi) String() string { return nadiNames[n] }

// NakshatraNadi returns the nadi of a nakshatra index.
func NakshatraNadi(nakIndex int) Nadi {
	return Nadi(nakIndex % 3)
}

// planetFriends records mutual planetary friendships used by Graha Maitri.
var planetFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
}

// PlanetsFriendly reports whether either planet counts the other a friend.
func PlanetsFriendly(a, b Planet) bool {
	for _, f := range planetFriends[a] {
		if f == b {
			return true
		}
	}
	for _, f := range planetFriends[b] {
		if f == a {
			return true
		}
	}
	return false
}

// TithiNames lists the 15 tithi names of each paksha; the 15th entry is
// replaced by Purnima in the bright half and Amavasya in the dark half.
var TithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// YogaNames lists the 27 nityayogas.
var YogaNames = [NakshatraCount]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva",
	"Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana",
	"Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla",
	"Brahma", "Indra", "Vaidhriti",
}

// MovableKaranas cycle through half-tithi slots 1..56.
var MovableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Fixed karanas pinned to the ends of the lunar month.
const (
	KaranaKimstughna  = "Kimstughna"
	KaranaShakuni     = "Shakuni"
	KaranaChatushpada = "Chatushpada"
	KaranaNaga        = "Naga"
)

// VaraNames lists the weekday names keyed by time.Weekday ordering.
var VaraNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

// MasaNames lists the solar months keyed by the Sun's sidereal sign,
// starting with Aries.
var MasaNames = [SignCount]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadrapada",
	"Ashwin", "Kartika", "Margashirsha", "Pausha", "Magha", "Phalguna",
}

// RituNames lists the six seasons; each spans two solar months.
var RituNames = [6]string{
	"Vasanta", "Grishma", "Varsha", "Sharad", "Hemanta", "Shishira",
}
