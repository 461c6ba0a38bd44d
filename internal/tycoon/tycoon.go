// Package tycoon defines the core domain data of the taxi idle game:
// the upgrade catalog, shop categories, milestone thresholds,
// achievement definitions and the persisted save shape. It has zero
// external dependencies — everything here is pure Go.
package tycoon

// PriceGrowth is the geometric price curve ratio: each level bought
// raises the next unit price by 15 %.
const PriceGrowth = 1.15

// RebirthThreshold is the lifetime-earnings gate for a rebirth; one
// Golden License is granted per full threshold earned.
const RebirthThreshold = 1_000_000

// GoldenLicenseBonus is the permanent income bonus per Golden License.
const GoldenLicenseBonus = 0.10

// AchievementBonus is the permanent income bonus per unlocked
// achievement.
const AchievementBonus = 0.02

// Category is an economic era of the shop. Categories are ordered:
// index in Categories is the tier index.
type Category struct {
	ID   string
	Name string
}

var Categories = []Category{
	{ID: "theStart", Name: "The Start"},
	{ID: "oldSchool", Name: "The Old School"},
	{ID: "kentronKing", Name: "The Kentron King"},
	{ID: "techEra", Name: "The Tech Era"},
	{ID: "theMogul", Name: "The Mogul"},
	{ID: "theFuture", Name: "The Future"},
	{ID: "theLegacy", Name: "The Legacy"},
}

// CategoryIndex returns the tier index of a category id, or -1.
func CategoryIndex(id string) int {
	for i, c := range Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Upgrade is one purchasable catalog entry. Exactly one of the three
// effect fields is non-zero: AMDPerSecond adds passive income per
// level, PerClickBonus adds flat click value per level,
// MultiplierPercent adds a fractional global multiplier per level.
type Upgrade struct {
	ID                string
	Title             string
	BasePrice         float64
	Category          string
	AMDPerSecond      float64
	PerClickBonus     float64
	MultiplierPercent float64
}

// ShopUpgradeIDs is the catalog in shop display order.
var ShopUpgradeIDs = []string{
	"walking_map", "comfortable_shoes", "bicycle_courier",
	"old_zhiguli", "second_hand_gps", "white_opel_astra",
	"silver_yashik", "armenian_coffee", "vip_tinted_windows",
	"yandex_partnership", "electric_scooter_fleet", "tesla_model_s",
	"zvartnots_permit", "private_bus_line", "metro_upgrade",
	"autonomous_driving", "flying_taxi_drone", "hyperloop",
	"teleportation_hub", "space_taxi", "time_travel", "pashut_god",
}

var Upgrades = map[string]Upgrade{
	"walking_map":            {ID: "walking_map", Title: "Walking Map", BasePrice: 10, Category: "theStart", AMDPerSecond: 0.2},
	"comfortable_shoes":      {ID: "comfortable_shoes", Title: "Comfortable Shoes", BasePrice: 50, Category: "theStart", PerClickBonus: 1},
	"bicycle_courier":        {ID: "bicycle_courier", Title: "Bicycle Courier", BasePrice: 150, Category: "theStart", AMDPerSecond: 2},
	"old_zhiguli":            {ID: "old_zhiguli", Title: "Old Zhiguli", BasePrice: 500, Category: "oldSchool", AMDPerSecond: 8},
	"second_hand_gps":        {ID: "second_hand_gps", Title: "Second-hand GPS", BasePrice: 1200, Category: "oldSchool", PerClickBonus: 5},
	"white_opel_astra":       {ID: "white_opel_astra", Title: "White Opel Astra", BasePrice: 3500, Category: "oldSchool", AMDPerSecond: 25},
	"silver_yashik":          {ID: "silver_yashik", Title: "Silver 'Yashik' (G-Wagon)", BasePrice: 10000, Category: "kentronKing", AMDPerSecond: 75},
	"armenian_coffee":        {ID: "armenian_coffee", Title: "Strong Armenian Coffee", BasePrice: 25000, Category: "kentronKing", PerClickBonus: 20},
	"vip_tinted_windows":     {ID: "vip_tinted_windows", Title: "VIP Tinted Windows", BasePrice: 60000, Category: "kentronKing", MultiplierPercent: 0.15},
	"yandex_partnership":     {ID: "yandex_partnership", Title: "Yandex/GG Partnership", BasePrice: 150000, Category: "techEra", AMDPerSecond: 400},
	"electric_scooter_fleet": {ID: "electric_scooter_fleet", Title: "Electric Scooter Fleet", BasePrice: 400000, Category: "techEra", AMDPerSecond: 1200},
	"tesla_model_s":          {ID: "tesla_model_s", Title: "Tesla Model S Taxi", BasePrice: 1000000, Category: "techEra", AMDPerSecond: 3500},
	"zvartnots_permit":       {ID: "zvartnots_permit", Title: "Zvartnots Airport Permit", BasePrice: 2500000, Category: "theMogul", AMDPerSecond: 10000},
	"private_bus_line":       {ID: "private_bus_line", Title: "Private Bus Line", BasePrice: 7000000, Category: "theMogul", AMDPerSecond: 30000},
	"metro_upgrade":          {ID: "metro_upgrade", Title: "Metro Station Upgrade", BasePrice: 20000000, Category: "theMogul", AMDPerSecond: 85000},
	"autonomous_driving":     {ID: "autonomous_driving", Title: "Autonomous Self-Driving", BasePrice: 60000000, Category: "theFuture", AMDPerSecond: 250000},
	"flying_taxi_drone":      {ID: "flying_taxi_drone", Title: "Flying Taxi Drone", BasePrice: 150000000, Category: "theFuture", AMDPerSecond: 650000},
	"hyperloop":              {ID: "hyperloop", Title: "Hyperloop Yerevan-Tbilisi", BasePrice: 500000000, Category: "theFuture", AMDPerSecond: 2000000},
	"teleportation_hub":      {ID: "teleportation_hub", Title: "Teleportation Hub", BasePrice: 1500000000, Category: "theFuture", AMDPerSecond: 7000000},
	"space_taxi":             {ID: "space_taxi", Title: "Space Taxi to Mars", BasePrice: 5000000000, Category: "theLegacy", AMDPerSecond: 25000000},
	"time_travel":            {ID: "time_travel", Title: "Time Travel Commute", BasePrice: 20000000000, Category: "theLegacy", AMDPerSecond: 100000000},
	"pashut_god":             {ID: "pashut_god", Title: "The Pashut God", BasePrice: 100000000000, Category: "theLegacy", AMDPerSecond: 500000000},
}

// Milestones are lifetime-earnings thresholds driving the progress
// bar. Advancing is a one-way pointer increment.
var Milestones = []float64{
	1e3, 1e4, 5e4, 1e5, 2e5, 5e5, 1e6, 5e6, 1e7, 1e8, 1e9,
}

// GoalType discriminates how an achievement target is evaluated.
type GoalType string

const (
	GoalTotalClicks     GoalType = "totalClicks"
	GoalTotalEarnings   GoalType = "totalEarnings"
	GoalLevelsBought    GoalType = "levelsBought"
	GoalClicksPerMinute GoalType = "clicksPerMinute"
	GoalUpgradeLevel    GoalType = "upgradeLevel"
	GoalSessionTime     GoalType = "sessionTimeSeconds"
)

// Achievement is one unlockable. UpgradeID is only set for
// GoalUpgradeLevel goals.
type Achievement struct {
	ID        string
	Name      string
	Goal      string
	Lore      string
	GoalType  GoalType
	UpgradeID string
	Target    float64
}

// Achievements in fixed evaluation order. CheckAndUnlock walks this
// slice front to back, so the order is part of the contract.
var Achievements = []Achievement{
	{
		ID: "barev", Name: "Barev, Akhpers", Goal: "100 Total Clicks",
		Lore:     "You've greeted your first 100 passengers.",
		GoalType: GoalTotalClicks, Target: 100,
	},
	{
		ID: "gas", Name: "Gas or Gasoline?", Goal: "Buy 5 Fuel Additives",
		Lore:     "Every driver in Yerevan has an opinion on this.",
		GoalType: GoalLevelsBought, Target: 5,
	},
	{
		ID: "route100", Name: "Route 100", Goal: "Hire 10 Drivers",
		Lore:     "You're starting to dominate the public transport scene.",
		GoalType: GoalLevelsBought, Target: 10,
	},
	{
		ID: "kentron_king", Name: "The Kentron King", Goal: "Earn 1M Total AMD",
		Lore:     "You finally have enough for a coffee at Opera.",
		GoalType: GoalTotalEarnings, Target: 1e6,
	},
	{
		ID: "olympic_speed", Name: "Olympic Speed", Goal: "Reach 50 Clicks per Minute",
		Lore:     "Your fingers are moving faster than a taxi at 2 AM.",
		GoalType: GoalClicksPerMinute, Target: 50,
	},
	{
		ID: "legendary_astra", Name: "Legendary Astra", Goal: "Upgrade White Opel to Lvl 50",
		Lore:     "It's not just a car; it's an immortal chariot.",
		GoalType: GoalUpgradeLevel, UpgradeID: "white_opel_astra", Target: 50,
	},
	{
		ID: "no_traffic", Name: "No Traffic Today", Goal: "Play for 1 hour straight",
		Lore:     "A rare phenomenon in Yerevan.",
		GoalType: GoalSessionTime, Target: 3600,
	},
}

// AchievementByID returns the definition for id, or false.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
