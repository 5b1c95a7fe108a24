// Package pagepath holds the catalogue of site pages an experiment can target
// and renders the pagePaths object injected into generated tests.
package pagepath

// Type groups page paths by kind of page.
type Type string

const (
	TypePFP Type = "PFP" // product filter / listing grid
	TypePCD Type = "PCD" // top-level category hub
	TypePDP Type = "PDP" // product detail page
	TypeBUY Type = "BUY" // purchase flow
)

// Entry is one page path. Value is a unique camelCase key used in the
// generated pagePaths object and as a test label.
type Entry struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Path  string `yaml:"path"`
	Type  Type   `yaml:"type"`
}

var catalogue = []Entry{
	// Filter/listing pages
	{Title: "PFP · All Smartphones", Value: "pfpSmartphonesAll", Path: "/smartphones/all-smartphones/", Type: TypePFP},
	{Title: "PFP · Galaxy A", Value: "pfpSmartphonesGalaxyA", Path: "/smartphones/galaxy-a/", Type: TypePFP},
	{Title: "PFP · Galaxy S", Value: "pfpSmartphonesGalaxyS", Path: "/smartphones/galaxy-s/", Type: TypePFP},
	{Title: "PFP · Galaxy Z", Value: "pfpSmartphonesGalaxyZ", Path: "/smartphones/galaxy-z/", Type: TypePFP},
	{Title: "PFP · All Tablets", Value: "pfpTabletsAll", Path: "/tablets/all-tablets/", Type: TypePFP},
	{Title: "PFP · Galaxy Tab S", Value: "pfpTabletsGalaxyTabS", Path: "/tablets/galaxy-tab-s/", Type: TypePFP},
	{Title: "PFP · Galaxy Tab A", Value: "pfpTabletsGalaxyTabA", Path: "/tablets/galaxy-tab-a/", Type: TypePFP},
	{Title: "PFP · All Computers", Value: "pfpComputersAll", Path: "/computers/all-computers/", Type: TypePFP},
	{Title: "PFP · Galaxy Book", Value: "pfpComputersGalaxyBook", Path: "/computers/galaxy-book/", Type: TypePFP},
	{Title: "PFP · Chromebook", Value: "pfpComputersChromebook", Path: "/computers/chromebook/", Type: TypePFP},
	{Title: "PFP · All Monitors", Value: "pfpMonitorsAll", Path: "/monitors/all-monitors/", Type: TypePFP},
	{Title: "PFP · Gaming Monitors", Value: "pfpMonitorsGaming", Path: "/monitors/gaming/", Type: TypePFP},
	{Title: "PFP · All Watches", Value: "pfpWatchesAll", Path: "/watches/all-watches/", Type: TypePFP},
	{Title: "PFP · Galaxy Watch", Value: "pfpWatchesGalaxyWatch", Path: "/watches/galaxy-watch/", Type: TypePFP},
	{Title: "PFP · Neo QLED TVs", Value: "pfpTvsNeoQled", Path: "/tvs/neo-qled-tvs/", Type: TypePFP},
	{Title: "PFP · OLED TVs", Value: "pfpTvsOled", Path: "/tvs/oled-tvs/", Type: TypePFP},
	{Title: "PFP · QLED TVs", Value: "pfpTvsQled", Path: "/tvs/qled-tvs/", Type: TypePFP},
	{Title: "PFP · 8K TVs", Value: "pfpTvs8k", Path: "/tvs/8k-tv/", Type: TypePFP},
	{Title: "PFP · All TVs", Value: "pfpTvsAll", Path: "/tvs/all-tvs/", Type: TypePFP},
	{Title: "PFP · Crystal UHD TVs", Value: "pfpTvsCrystalUhd", Path: "/tvs/all-tvs/?crystal-uhd", Type: TypePFP},
	{Title: "PFP · The Frame", Value: "pfpLifestyleTheFrame", Path: "/lifestyle-tvs/the-frame/", Type: TypePFP},
	{Title: "PFP · The Serif", Value: "pfpLifestyleTheSerif", Path: "/lifestyle-tvs/the-serif/", Type: TypePFP},
	{Title: "PFP · The Terrace", Value: "pfpLifestyleTheTerrace", Path: "/lifestyle-tvs/the-terrace/", Type: TypePFP},
	{Title: "PFP · The Sero", Value: "pfpLifestyleTheSero", Path: "/lifestyle-tvs/the-sero/", Type: TypePFP},
	{Title: "PFP · All Audio Devices", Value: "pfpAudioAll", Path: "/audio-devices/all-audio-devices/", Type: TypePFP},
	{Title: "PFP · All Refrigerators", Value: "pfpRefrigeratorsAll", Path: "/refrigerators/all-refrigerators/", Type: TypePFP},
	{Title: "PFP · Smart Refrigerators", Value: "pfpRefrigSmart", Path: "/refrigerators/smart/", Type: TypePFP},
	{Title: "PFP · French Door", Value: "pfpRefrigFrenchDoor", Path: "/refrigerators/french-door/", Type: TypePFP},
	{Title: "PFP · Side-by-Side", Value: "pfpRefrigSideBySide", Path: "/refrigerators/side-by-side/", Type: TypePFP},
	{Title: "PFP · All Washers & Dryers", Value: "pfpWashersAll", Path: "/washers-and-dryers/all-washers-and-dryers/", Type: TypePFP},
	{Title: "PFP · Washing Machines", Value: "pfpWashingMachines", Path: "/washers-and-dryers/washing-machines/", Type: TypePFP},
	{Title: "PFP · Washer-Dryer Combo", Value: "pfpWasherDryerCombo", Path: "/washers-and-dryers/washer-dryer-combo/", Type: TypePFP},
	{Title: "PFP · Dryers", Value: "pfpDryers", Path: "/washers-and-dryers/dryers/", Type: TypePFP},
	{Title: "PFP · All Cooking", Value: "pfpCookingAll", Path: "/cooking-appliances/all-cooking-appliances/", Type: TypePFP},
	{Title: "PFP · Ovens", Value: "pfpCookingOvens", Path: "/cooking-appliances/ovens/", Type: TypePFP},
	{Title: "PFP · Hobs", Value: "pfpCookingHobs", Path: "/cooking-appliances/hobs/", Type: TypePFP},
	{Title: "PFP · Microwave Ovens", Value: "pfpMicrowaveAll", Path: "/microwave-ovens/all-microwave-ovens/", Type: TypePFP},
	{Title: "PFP · Hoods", Value: "pfpCookingHoods", Path: "/cooking-appliances/hoods/", Type: TypePFP},
	{Title: "PFP · All Dishwashers", Value: "pfpDishwashersAll", Path: "/dishwashers/all-dishwashers/", Type: TypePFP},
	{Title: "PFP · All Vacuum Cleaners", Value: "pfpVacuumAll", Path: "/vacuum-cleaners/all-vacuum-cleaners/", Type: TypePFP},

	// Category hubs
	{Title: "PCD · Smartphones", Value: "pcdSmartphones", Path: "/smartphones/", Type: TypePCD},
	{Title: "PCD · Tablets", Value: "pcdTablets", Path: "/tablets/", Type: TypePCD},
	{Title: "PCD · Computers", Value: "pcdComputers", Path: "/computers/", Type: TypePCD},
	{Title: "PCD · Monitors", Value: "pcdMonitors", Path: "/monitors/", Type: TypePCD},
	{Title: "PCD · Watches", Value: "pcdWatches", Path: "/watches/", Type: TypePCD},
	{Title: "PCD · TVs", Value: "pcdTvs", Path: "/tvs/", Type: TypePCD},
	{Title: "PCD · Lifestyle TVs", Value: "pcdLifestyleTvs", Path: "/lifestyle-tvs/", Type: TypePCD},
	{Title: "PCD · Audio Devices", Value: "pcdAudio", Path: "/audio-devices/", Type: TypePCD},
	{Title: "PCD · Projectors", Value: "pcdProjectors", Path: "/projectors/", Type: TypePCD},
	{Title: "PCD · Refrigerators", Value: "pcdRefrigerators", Path: "/refrigerators/", Type: TypePCD},
	{Title: "PCD · Washers & Dryers", Value: "pcdWashers", Path: "/washers-and-dryers/", Type: TypePCD},
	{Title: "PCD · Cooking", Value: "pcdCooking", Path: "/cooking-appliances/", Type: TypePCD},
	{Title: "PCD · Dishwashers", Value: "pcdDishwashers", Path: "/dishwashers/", Type: TypePCD},
	{Title: "PCD · Vacuum Cleaners", Value: "pcdVacuum", Path: "/vacuum-cleaners/", Type: TypePCD},

	// Product detail pages
	{Title: "PDP · Galaxy Z Fold7", Value: "pdpGalaxyZFold7", Path: "/smartphones/galaxy-z-fold7/", Type: TypePDP},
	{Title: "PDP · Galaxy Z Flip7", Value: "pdpGalaxyZFlip7", Path: "/smartphones/galaxy-z-flip7/", Type: TypePDP},
	{Title: "PDP · Galaxy Z Flip7 FE", Value: "pdpGalaxyZFlip7Fe", Path: "/smartphones/galaxy-z-flip7-fe/", Type: TypePDP},
	{Title: "PDP · Galaxy S25", Value: "pdpGalaxyS25", Path: "/smartphones/galaxy-s25/", Type: TypePDP},
	{Title: "PDP · Galaxy S25 Edge", Value: "pdpGalaxyS25Edge", Path: "/smartphones/galaxy-s25-edge/", Type: TypePDP},
	{Title: "PDP · Galaxy S25 Ultra", Value: "pdpGalaxyS25Ultra", Path: "/smartphones/galaxy-s25-ultra/", Type: TypePDP},
	{Title: "PDP · Galaxy Z Fold6", Value: "pdpGalaxyZFold6", Path: "/smartphones/galaxy-z-fold6/", Type: TypePDP},
	{Title: "PDP · Galaxy Z Flip6", Value: "pdpGalaxyZFlip6", Path: "/smartphones/galaxy-z-flip6/", Type: TypePDP},
	{Title: "PDP · Galaxy S24", Value: "pdpGalaxyS24", Path: "/smartphones/galaxy-s24/", Type: TypePDP},
	{Title: "PDP · Galaxy S24 FE", Value: "pdpGalaxyS24Fe", Path: "/smartphones/galaxy-s24-fe/", Type: TypePDP},
	{Title: "PDP · Galaxy S24 Ultra", Value: "pdpGalaxyS24Ultra", Path: "/smartphones/galaxy-s24-ultra/", Type: TypePDP},

	// Purchase pages
	{Title: "BUY · Galaxy Z Fold7", Value: "buyGalaxyZFold7", Path: "/smartphones/galaxy-z-fold7/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy Z Flip7", Value: "buyGalaxyZFlip7", Path: "/smartphones/galaxy-z-flip7/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy Z Flip7 FE", Value: "buyGalaxyZFlip7Fe", Path: "/smartphones/galaxy-z-flip7-fe/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S25", Value: "buyGalaxyS25", Path: "/smartphones/galaxy-s25/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S25 Edge", Value: "buyGalaxyS25Edge", Path: "/smartphones/galaxy-s25-edge/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S25 Ultra", Value: "buyGalaxyS25Ultra", Path: "/smartphones/galaxy-s25-ultra/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy Z Fold6", Value: "buyGalaxyZFold6", Path: "/smartphones/galaxy-z-fold6/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy Z Flip6", Value: "buyGalaxyZFlip6", Path: "/smartphones/galaxy-z-flip6/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S24", Value: "buyGalaxyS24", Path: "/smartphones/galaxy-s24/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S24 Ultra", Value: "buyGalaxyS24Ultra", Path: "/smartphones/galaxy-s24-ultra/buy/", Type: TypeBUY},
	{Title: "BUY · Galaxy S24 FE", Value: "buyGalaxyS24Fe", Path: "/smartphones/galaxy-s24-fe/buy/", Type: TypeBUY},
}

// Entries returns a copy of the catalogue in display order.
func Entries() []Entry {
	return append([]Entry(nil), catalogue...)
}

// Lookup returns the entry for value. Unknown values get a PFP entry whose
// path is derived from the value itself.
func Lookup(value string) Entry {
	for _, e := range catalogue {
		if e.Value == value {
			return e
		}
	}
	return Entry{Title: value, Value: value, Path: "/" + value + "/", Type: TypePFP}
}

// LookupAll maps selected values back to catalogue entries, keeping order.
func LookupAll(values []string) []Entry {
	out := make([]Entry, 0, len(values))
	for _, v := range values {
		out = append(out, Lookup(v))
	}
	return out
}
