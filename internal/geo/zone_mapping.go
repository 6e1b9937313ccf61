package geo

// Curated mapping tables between the three neighborhood identifier
// schemes found in the data:
//
//   - raw OMI zone names as stored in the price table (free text,
//     sometimes wrapped in single quotes)
//   - NIL slugs, the official micro-neighborhood identifiers used by
//     the dashboard
//   - legacy 1:1 zone slugs from before the OMI->NIL mapping existed
//
// The two tables grew separately and their value domains only partially
// overlap; they are kept as distinct structures with explicit
// precedence (multi-map first, legacy/slug fallback second). Both are
// maintained by hand and must be updated when upstream zone names
// change. They are ordered slices rather than map literals: the derived
// inverse tables must come out identical on every start, and where one
// legacy slug covers several zones the later entry wins.

// zoneCoverage pairs one canonical OMI zone name with the NIL slugs its
// price data covers.
type zoneCoverage struct {
	zone string
	nils []string
}

// zoneCoverages maps canonical OMI zone names to the NIL slugs they
// cover. One zone commonly spans several NILs.
var zoneCoverages = []zoneCoverage{
	// Fascia B - centro storico
	{"CENTRO STORICO -DUOMO, SANBABILA, MONTENAPOLEONE, MISSORI, CAIROLI", []string{"duomo"}},
	{"CENTRO STORICO -UNIVERSITA STATALE, SAN LORENZO", []string{"guastalla"}},
	{"CENTRO STORICO - BRERA", []string{"brera"}},
	{"CENTRO STORICO -SANT`AMBROGIO, CADORNA, VIA DANTE", []string{"magenta---s-vittore"}},
	{"PARCO SEMPIONE, ARCO DELLA PACE, CORSO MAGENTA", []string{"parco-sempione", "porta-magenta"}},
	{"TURATI, MOSCOVA, CORSO VENEZIA", []string{"giardini-pta-venezia", "porta-garibaldi---porta-nuova"}},
	{"VENEZIA, PORTA VITTORIA, PORTA ROMANA", []string{"buenos-aires---porta-venezia---porta-monforte"}},
	{"PORTA VIGENTINA, PORTA ROMANA", []string{"porta-vigentina---porta-lodovica", "pta-romana"}},
	{"PORTA TICINESE, PORTA GENOVA, VIA SAN VITTORE", []string{"porta-ticinese---conca-del-naviglio", "porta-genova", "porta-ticinese---conchetta"}},

	// Fascia C - semicentro
	{"PISANI, BUENOS AIRES, REGINA GIOVANNA", []string{"loreto---casoretto---nolo"}},
	{"CITY LIFE", []string{"tre-torri", "portello"}},
	{"PORTA NUOVA", []string{"isola"}},
	{"STAZIONE CENTRALE VIALE STELVIO", []string{"stazione-centrale---ponte-seveso"}},
	{"CENISIO, FARINI, SARPI", []string{"sarpi", "farini", "ghisolfa"}},
	{"SEMPIONE, PAGANO, WASHINGTON", []string{"pagano", "de-angeli---monte-rosa"}},
	{"SOLARI, P.TA GENOVA, ASCANIO SFORZA", []string{"moncucco---san-cristoforo"}},
	{"TABACCHI, SARFATTI, CREMA", []string{"tibaldi"}},
	{"LIBIA, ,XXII MARZO, INDIPENDENZA", []string{"xxii-marzo", "corsica"}},

	// Fascia D - periferia
	{"PARCO LAMBRO, FELTRE, UDINE", []string{"cimiano---rottole---qre-feltre", "parco-forlanini---cavriano"}},
	{"PIOLA, ARGONNE, CORSICA", []string{"citta-studi"}},
	{"LAMBRATE, RUBATTINO, ROMBON", []string{"lambrate---ortica"}},
	{"FORLANINI, MECENATE, ORTOMERCATO, SANTA GIULIA", []string{"ortomercato", "taliedo---morsenchio---qre-forlanini"}},
	{"FORLANINI, MECENATE, PONTE LAMBRO", []string{"monlue---ponte-lambro", "parco-forlanini---cavriano"}},
	{"TITO LIVIO, TERTULLIANO, LONGANESI", []string{"umbria---molise---calvairate"}},
	{"TITO LIVIO, TERTULLIANO, LONGANESI, ORTOMERCATO", []string{"umbria---molise---calvairate", "ortomercato", "taliedo---morsenchio---qre-forlanini"}},
	{"MAROCCHETTI, VIGENTINO, CHIESA ROSSA", []string{"vigentino---qre-fatima", "morivione", "stadera---chiesa-rossa---qre-torretta---conca-fallata"}},
	{"ORTLES, SPADOLINI, BAZZI", []string{"scalo-romana", "lodi---corvetto"}},
	{"BARONA, FAMAGOSTA, FAENZA", []string{"barona", "cantalupa", "ronchetto-sul-naviglio---qre-lodovico-il-moro"}},
	{"SEGESTA, ARETUSA, VESPRI SICILIANI", []string{"san-siro", "bande-nere"}},
	{"LORENTEGGIO, INGANNI, BISCEGLIE, SAN CARLO B.", []string{"lorenteggio", "giambellino", "forze-armate", "quarto-cagnino"}},
	{"IPPODROMO, CAPRILLI, MONTE STELLA", []string{"stadio---ippodromi", "qt-8"}},
	{"MUSOCCO, CERTOSA, EXPO, C.NA MERLATA", []string{"maggiore---musocco---certosa", "cascina-merlata"}},
	{"MUSOCCO, CERTOSA", []string{"villapizzone---cagnola---boldinasco", "stephenson", "maggiore---musocco---certosa"}},
	{"BOVISA, BAUSAN, IMBONATI", []string{"bovisa", "dergano"}},
	{"BOVISASCA, AFFORI, P. ROSSI , COMASINA", []string{"affori", "bovisasca", "comasina", "bruzzano"}},
	{"NIGUARDA, BIGNAMI, PARCO NORD", []string{"niguarda---ca-granda---prato-centenaro---qre-fulvio-testi", "parco-nord"}},
	{"SARCA, BICOCCA", []string{"bicocca", "greco---segnano"}},
	{"MONZA, CRESCENZAGO, GORLA, QUARTIERE ADRIANO", []string{"adriano", "gorla---precotto", "padova---turro---crescenzago"}},
	{"MAGGIOLINA, PARCO TROTTER, LEONCAVALLO", []string{"maciachini---maggiolina"}},
	{"SANTA GIULIA, ROGOREDO", []string{"rogoredo---santa-giulia"}},
	{"CASCINA MERLATA, EXPO", []string{"cascina-merlata", "roserio"}},

	// Fascia E - suburbana
	{"BAGGIO, Q. ROMANO, MUGGIANO", []string{"baggio---qre-degli-olmi---qre-valsesia", "quinto-romano", "muggiano"}},
	{"GALLARATESE, LAMPUGNANO, P. TRENNO, BONOLA", []string{"qre-gallaratese---qre-san-leonardo---lampugnano", "trenno", "figino"}},
	{"MISSAGLIA, GRATOSOGLIO", []string{"gratosoglio---qre-missaglia---qre-terrazze", "ronchetto-delle-rane"}},
	{"QUARTO OGGIARO, SACCO", []string{"quarto-oggiaro---vialba---musocco", "stephenson"}},
}

// legacyZone pairs one raw DB zone value, surrounding single quotes
// included, with its 1:1 legacy slug.
type legacyZone struct {
	rawName string
	slug    string
}

// legacyZones is the older 1:1 scheme, in maintenance order. Raw names
// are the exact DB values.
var legacyZones = []legacyZone{
	// centro storico
	{"'CENTRO STORICO -DUOMO, SANBABILA, MONTENAPOLEONE, MISSORI, CAIROLI'", "centro-duomo"},
	{"'CENTRO STORICO - BRERA'", "centro-brera"},
	{"'CENTRO STORICO -SANT`AMBROGIO, CADORNA, VIA DANTE'", "centro-santambrogio"},
	{"'CENTRO STORICO -UNIVERSITA STATALE, SAN LORENZO'", "centro-universita"},
	// zone centrali / semi-centrali
	{"'PORTA NUOVA'", "porta-nuova"},
	{"'CITY LIFE'", "city-life"},
	{"'TURATI, MOSCOVA, CORSO VENEZIA'", "turati-moscova"},
	{"'PARCO SEMPIONE, ARCO DELLA PACE, CORSO MAGENTA'", "parco-sempione"},
	{"'SEMPIONE, PAGANO, WASHINGTON'", "sempione-pagano"},
	{"'PISANI, BUENOS AIRES, REGINA GIOVANNA'", "pisani-buenos-aires"},
	{"'PORTA VIGENTINA, PORTA ROMANA'", "porta-vigentina"},
	{"'PORTA TICINESE, PORTA GENOVA, VIA SAN VITTORE'", "porta-ticinese"},
	{"'VENEZIA, PORTA VITTORIA, PORTA ROMANA'", "venezia-porta-vittoria"},
	{"'LIBIA, ,XXII MARZO, INDIPENDENZA'", "libia-xxii-marzo"},
	// zone semi-periferiche
	{"'CENISIO, FARINI, SARPI'", "cenisio-farini"},
	{"'STAZIONE CENTRALE VIALE STELVIO'", "stazione-centrale"},
	{"'SOLARI, P.TA GENOVA, ASCANIO SFORZA'", "solari-navigli"},
	{"'TABACCHI, SARFATTI, CREMA'", "tabacchi-sarfatti"},
	{"'PIOLA, ARGONNE, CORSICA'", "piola-argonne"},
	// periferia
	{"'IPPODROMO, CAPRILLI, MONTE STELLA'", "ippodromo-monte-stella"},
	{"'MAGGIOLINA, PARCO TROTTER, LEONCAVALLO'", "maggiolina"},
	{"'SEGESTA, ARETUSA, VESPRI SICILIANI'", "segesta-aretusa"},
	{"'ORTLES, SPADOLINI, BAZZI'", "ortles-spadolini"},
	{"'BOVISA, BAUSAN, IMBONATI'", "bovisa-imbonati"},
	{"'LAMBRATE, RUBATTINO, ROMBON'", "lambrate-rubattino"},
	{"'MAROCCHETTI, VIGENTINO, CHIESA ROSSA'", "marocchetti-vigentino"},
	{"'BARONA, FAMAGOSTA, FAENZA'", "barona-famagosta"},
	{"'TITO LIVIO, TERTULLIANO, LONGANESI'", "tito-livio"},
	{"'TITO LIVIO, TERTULLIANO, LONGANESI, ORTOMERCATO'", "tito-livio"},
	{"'SANTA GIULIA, ROGOREDO'", "santa-giulia-rogoredo"},
	{"'MUSOCCO, CERTOSA'", "musocco-certosa"},
	{"'MUSOCCO, CERTOSA, EXPO, C.NA MERLATA'", "musocco-certosa"},
	{"'MONZA, CRESCENZAGO, GORLA, QUARTIERE ADRIANO'", "monza-crescenzago"},
	{"'PARCO LAMBRO, FELTRE, UDINE'", "parco-lambro"},
	{"'SARCA, BICOCCA'", "sarca-bicocca"},
	{"'CASCINA MERLATA, EXPO'", "expo-cascina-merlata"},
	{"'BOVISASCA, AFFORI, P. ROSSI , COMASINA'", "bovisasca-affori"},
	{"'NIGUARDA, BIGNAMI, PARCO NORD'", "niguarda-bignami"},
	{"'FORLANINI, MECENATE, PONTE LAMBRO'", "forlanini-mecenate"},
	{"'FORLANINI, MECENATE, ORTOMERCATO, SANTA GIULIA'", "forlanini-mecenate"},
	{"'LORENTEGGIO, INGANNI, BISCEGLIE, SAN CARLO B.'", "lorenteggio-inganni"},
	// suburbana
	{"'GALLARATESE, LAMPUGNANO, P. TRENNO, BONOLA'", "gallaratese-lampugnano"},
	{"'BAGGIO, Q. ROMANO, MUGGIANO'", "baggio-quarto-romano"},
	{"'QUARTO OGGIARO, SACCO'", "quarto-oggiaro"},
	{"'MISSAGLIA, GRATOSOGLIO'", "missaglia-gratosoglio"},
}

// neighborhoodsWithoutZoneData lists NILs known to have no OMI price
// coverage (parks, rural areas). Lets callers distinguish "has no data"
// from "unmapped".
var neighborhoodsWithoutZoneData = map[string]bool{
	"triulzo-superiore":    true,
	"chiaravalle":          true,
	"quintosole":           true,
	"parco-delle-abbazie":  true,
	"parco-dei-navigli":    true,
	"assiano":              true,
	"parco-bosco-in-citta": true,
}

// Derived indexes built once at init, in table order.
var (
	// zoneToNeighborhoods indexes zoneCoverages by canonical zone name.
	zoneToNeighborhoods map[string][]string
	// neighborhoodToZones is the inverse; each NIL's zone list keeps
	// coverage-table order.
	neighborhoodToZones map[string][]string
	// legacyZoneToSlug indexes legacyZones by raw name.
	legacyZoneToSlug map[string]string
	// legacyZoneToSlugClean re-keys legacyZones by canonical (unquoted)
	// zone name so lookups work on either form.
	legacyZoneToSlugClean map[string]string
	// legacySlugToZone inverts legacyZones; for duplicated slugs the
	// later table entry wins.
	legacySlugToZone map[string]string
)

func init() {
	zoneToNeighborhoods = make(map[string][]string, len(zoneCoverages))
	neighborhoodToZones = make(map[string][]string)
	for _, cov := range zoneCoverages {
		zoneToNeighborhoods[cov.zone] = cov.nils
		for _, nilID := range cov.nils {
			neighborhoodToZones[nilID] = append(neighborhoodToZones[nilID], cov.zone)
		}
	}

	legacyZoneToSlug = make(map[string]string, len(legacyZones))
	legacyZoneToSlugClean = make(map[string]string, len(legacyZones))
	legacySlugToZone = make(map[string]string, len(legacyZones))
	for _, z := range legacyZones {
		legacyZoneToSlug[z.rawName] = z.slug
		legacyZoneToSlugClean[CanonicalizeZoneName(z.rawName)] = z.slug
		legacySlugToZone[z.slug] = z.rawName
	}
}

// LookupNeighborhoods returns the NIL slugs covered by the given zone,
// matching the canonical name exactly. Absent zones yield an empty
// slice, not an error.
func LookupNeighborhoods(canonicalZoneName string) []string {
	return zoneToNeighborhoods[canonicalZoneName]
}

// LookupZonesForNeighborhood returns the OMI zones whose price data
// covers the given NIL, in coverage-table order.
func LookupZonesForNeighborhood(nilID string) []string {
	return neighborhoodToZones[nilID]
}

// LookupLegacyID resolves a zone name (raw or canonical) to its legacy
// 1:1 slug, falling back to Slugify so every zone name yields some
// identifier.
func LookupLegacyID(zoneName string) string {
	if slug, ok := legacyZoneToSlug[zoneName]; ok {
		return slug
	}
	canonical := CanonicalizeZoneName(zoneName)
	if slug, ok := legacyZoneToSlugClean[canonical]; ok {
		return slug
	}
	return Slugify(canonical)
}

// ReverseLookupZoneName returns the raw DB zone name (quotes included)
// for a legacy slug. Exact map only; no fallback.
func ReverseLookupZoneName(legacyID string) (string, bool) {
	rawName, ok := legacySlugToZone[legacyID]
	return rawName, ok
}

// HasPriceData reports whether a NIL receives OMI price data: it must
// not be in the known no-coverage set and must appear in the curated
// mapping.
func HasPriceData(nilID string) bool {
	if neighborhoodsWithoutZoneData[nilID] {
		return false
	}
	return len(neighborhoodToZones[nilID]) > 0
}

// KnownWithoutPriceData reports whether a NIL is in the curated set of
// neighborhoods with no price coverage by nature (parks, rural zones).
func KnownWithoutPriceData(nilID string) bool {
	return neighborhoodsWithoutZoneData[nilID]
}

// CuratedZoneNames returns every canonical zone name in the multi-map,
// in table order. Useful for diagnostics and tests.
func CuratedZoneNames() []string {
	names := make([]string, 0, len(zoneCoverages))
	for _, cov := range zoneCoverages {
		names = append(names, cov.zone)
	}
	return names
}
