package config

import "github.com/gonewx/loopline/pkg/types"

// DefaultCatalog 返回内置的内容目录（与 data/catalog.yaml 保持一致）
// 测试和 YAML 加载失败时的降级路径使用它
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Cards: []CardDef{
			{ID: "gunner", Kind: CardWagon, Title: "GUNNER CAR", Desc: "Standard auto-turret.", Rarity: RarityCommon, MaxLevel: 5, Weight: 10},
			{ID: "sniper", Kind: CardWagon, Title: "SNIPER CAR", Desc: "Long range, high damage.", Rarity: RarityRare, MaxLevel: 5, Weight: 5},
			{ID: "flame", Kind: CardWagon, Title: "FLAMER CAR", Desc: "Short range rapid fire.", Rarity: RarityRare, MaxLevel: 5, Weight: 10},
			{ID: "shield", Kind: CardWagon, Title: "SHIELD CAR", Desc: "Protects nearby cars.", Rarity: RarityCommon, MaxLevel: 5, Weight: 20},
			{ID: "miner", Kind: CardWagon, Title: "SCRAPPER", Desc: "Generates scrap over time.", Rarity: RarityCommon, MaxLevel: 5, Weight: 15},
			{ID: "tesla", Kind: CardWagon, Title: "TESLA COIL", Desc: "Zaps nearby enemies instantly.", Rarity: RarityRare, MaxLevel: 5, Weight: 10},
			{ID: "mortar", Kind: CardWagon, Title: "HEAVY MORTAR", Desc: "Lobs explosive shells.", Rarity: RarityRare, MaxLevel: 5, Weight: 20},
			{ID: "cryo", Kind: CardWagon, Title: "CRYO BEAM", Desc: "Slows enemies down.", Rarity: RarityCommon, MaxLevel: 5, Weight: 10},
			{ID: "drone", Kind: CardWagon, Title: "DRONE BAY", Desc: "Deploys attack drones.", Rarity: RarityLegendary, MaxLevel: 5, Weight: 5},
			{ID: "spike", Kind: CardWagon, Title: "SPIKE ARMOR", Desc: "Deals damage on contact.", Rarity: RarityCommon, MaxLevel: 5, Weight: 15},
			{ID: "fabricator", Kind: CardWagon, Title: "FABRICATOR", Desc: "Buffs adjacent wagons damage.", Rarity: RarityRare, MaxLevel: 5, Weight: 10},
			{ID: "stasis", Kind: CardWagon, Title: "STASIS FIELD", Desc: "Slows nearby enemies.", Rarity: RarityCommon, MaxLevel: 5, Weight: 10},
			{ID: "medic", Kind: CardWagon, Title: "MEDIC BAY", Desc: "Repairs hull over time.", Rarity: RarityRare, MaxLevel: 5, Weight: 10},
			{ID: "railgun", Kind: CardWagon, Title: "RAILGUN", Desc: "High velocity slug, massive knockback.", Rarity: RarityRare, MaxLevel: 5, Weight: 15},
			{ID: "acid", Kind: CardWagon, Title: "ACID TANK", Desc: "Corrosive spray, melts enemies over time.", Rarity: RarityCommon, MaxLevel: 5, Weight: 10},
			{ID: "gravity", Kind: CardWagon, Title: "GRAVITY WELL", Desc: "Pulls enemies in.", Rarity: RarityRare, MaxLevel: 5, Weight: 15},
			{ID: "thumper", Kind: CardWagon, Title: "THUMPER", Desc: "Shockwave pushes enemies back.", Rarity: RarityCommon, MaxLevel: 5, Weight: 20},
			{ID: "missile", Kind: CardWagon, Title: "MISSILE CAR", Desc: "Fires homing rockets.", Rarity: RarityRare, MaxLevel: 5, Weight: 10},
			{ID: "cluster", Kind: CardWagon, Title: "CLUSTER LAUNCHER", Desc: "Rocket splits on impact.", Rarity: RarityLegendary, MaxLevel: 5, Weight: 5},
			{ID: "omni", Kind: CardWagon, Title: "OMNI-BATTERY", Desc: "Legendary rapid fire array.", Rarity: RarityLegendary, MaxLevel: 5, Weight: 10},
			{ID: StatRepair, Kind: CardStat, Title: "FULL REPAIR", Desc: "Restore 100% Hull.", Rarity: RarityCommon},
			{ID: StatDamage, Kind: CardStat, Title: "TURRET MK2", Desc: "+50% Locomotive Damage.", Rarity: RarityRare, Amount: 1.5},
			{ID: StatSpeed, Kind: CardStat, Title: "TURBO PISTON", Desc: "+0.5 Max Speed.", Rarity: RarityRare, Amount: 0.5},
			{ID: StatRam, Kind: CardStat, Title: "RAM PLATING", Desc: "Ram damage up, self dmg down.", Rarity: RarityLegendary, Amount: 50, Reduction: 0.8},
			{ID: StatMagnet, Kind: CardStat, Title: "MAG-CRANE", Desc: "+100 Collection Range.", Rarity: RarityRare, Amount: 100},
		},
		Depots: []DepotDef{
			{ID: DepotGearbox, Title: "GEARBOX", Desc: "+1 Top Gear Speed", Amount: 1},
			{ID: DepotExtender, Title: "EXTENDER", Desc: "+3 Max Wagons", Amount: ExtenderSlots},
			{ID: DepotRecycler, Title: "RECYCLER", Desc: "Scrap last wagon for 200 Scrap", Amount: RecyclerScrap},
			{ID: DepotRepair, Title: "REPAIR STATION", Desc: "Full Heal + 50 Max HP", Amount: 50},
			{ID: DepotArmory, Title: "ARMORY", Desc: "+20% Global Damage", Amount: 1.2},
			{ID: DepotReactor, Title: "REACTOR", Desc: "+15% Fire Rate", Amount: 1.15},
			{ID: DepotShield, Title: "SHIELD GEN", Desc: "Permanent 50 HP Shield", Amount: 50},
			{ID: DepotMagnet, Title: "MAGNET TOWER", Desc: "+200% Magnet Range", Amount: 3},
			{ID: DepotDrill, Title: "DRILL STATION", Desc: "+50 Ram Damage", Amount: 50},
			{ID: DepotLab, Title: "LABORATORY", Desc: "Get a random Rare Wagon", Amount: CapacityFullScrap},
		},
		Engines: []EngineDef{
			{ID: "pioneer", Name: "THE PIONEER", Desc: "Balanced and reliable.", HP: 100, Speed: 5.0, Ram: 0, Magnet: 120,
				Track: TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200}},
			{ID: "juggernaut", Name: "THE JUGGERNAUT", Desc: "Heavy armor and crushing ram damage.", HP: 200, Speed: 4.0, Ram: 50, Magnet: 100,
				Track: TrackShape{Kind: "lissajous", Nodes: 12, RadiusX: 200, RadiusY: 100}},
			{ID: "interceptor", Name: "THE INTERCEPTOR", Desc: "High speed and agility. Weak hull.", HP: 60, Speed: 7.0, Ram: -20, Magnet: 150,
				Track: TrackShape{Kind: "circle", Nodes: 8, RadiusX: 200}},
			{ID: "scavenger", Name: "THE SCAVENGER", Desc: "Optimized for loot collection.", HP: 80, Speed: 5.5, Ram: 0, Magnet: 200, Scrap: 150,
				Track: TrackShape{Kind: "circle", Nodes: 10, RadiusX: 220}},
			{ID: "bastion", Name: "THE BASTION", Desc: "Defensive powerhouse. Starts with a Shield.", HP: 150, Speed: 4.5, Ram: 20, Magnet: 120, Shield: 50,
				Track: TrackShape{Kind: "circle", Nodes: 6, RadiusX: 100}},
		},
		Difficulties: []DifficultyDef{
			{ID: "easy", Label: "CADET", Multiplier: 0.8, SpawnRateBase: 240},
			{ID: "normal", Label: "ENGINEER", Multiplier: 1.0, SpawnRateBase: 180},
			{ID: "hard", Label: "CONDUCTOR", Multiplier: 1.2, SpawnRateBase: 120},
		},
		Enemies: []EnemyDef{
			{Type: types.EnemyNormal, HP: 40, Speed: 1.2, Size: 14, Score: 10, XP: 10},
			{Type: types.EnemySwarmer, HP: 10, Speed: 2.8, Size: 8, Score: 5, XP: 5, Band: &SpawnBand{AfterWave: 2, Min: 0, Max: 0.3}},
			{Type: types.EnemyDasher, HP: 25, Speed: 3.5, Size: 12, Score: 12, XP: 15, Band: &SpawnBand{AfterWave: 3, Min: 0.6, Max: 1}},
			{Type: types.EnemyMiner, HP: 60, Speed: 1.5, Size: 15, Score: 25, XP: 25, Band: &SpawnBand{AfterWave: 4, Min: 0.75, Max: 1}},
			{Type: types.EnemyBoomer, HP: 50, Speed: 1.0, Size: 16, Score: 20, XP: 20, Band: &SpawnBand{AfterWave: 5, Min: 0.85, Max: 1}},
			{Type: types.EnemyTank, HP: 120, Speed: 0.35, Size: 18, Score: 30, XP: 30, Band: &SpawnBand{AfterWave: 6, Min: 0.9, Max: 1}},
			{Type: types.EnemyShooter, HP: 30, Speed: 1.0, Size: 13, Score: 15, XP: 15, Band: &SpawnBand{AfterWave: 2, Min: 0.5, Max: 0.6}},
			{Type: types.EnemyScreamer, HP: 40, Speed: 1.1, Size: 14, Score: 20, XP: 20, Band: &SpawnBand{AfterWave: 4, Min: 0.3, Max: 0.4}},
			{Type: types.EnemyHealer, HP: 45, Speed: 1.0, Size: 14, Score: 20, XP: 20, Band: &SpawnBand{AfterWave: 5, Min: 0.4, Max: 0.5}},
			{Type: types.EnemyShielder, HP: 70, Speed: 0.8, Size: 16, Score: 25, XP: 25, Band: &SpawnBand{AfterWave: 6, Min: 0.1, Max: 0.2}},
			{Type: types.EnemyCrusher, HP: 2000, Speed: 0.8, Size: 40, Score: 500, XP: 200},
			{Type: types.EnemyQueen, HP: 1500, Speed: 0.5, Size: 35, Score: 500, XP: 200},
			{Type: types.EnemySniperBoss, HP: 1200, Speed: 0.6, Size: 30, Score: 500, XP: 200},
			{Type: types.EnemyTeslaBoss, HP: 1800, Speed: 1.0, Size: 35, Score: 500, XP: 200},
			{Type: types.EnemyFortress, HP: 3000, Speed: 0.2, Size: 45, Score: 500, XP: 200},
			{Type: types.EnemyPhantom, HP: 1000, Speed: 1.5, Size: 30, Score: 500, XP: 200},
		},
		Bosses: []types.EnemyType{
			types.EnemyCrusher, types.EnemyQueen, types.EnemySniperBoss,
			types.EnemyTeslaBoss, types.EnemyFortress, types.EnemyPhantom,
		},
	}
	for i := range c.Cards {
		if c.Cards[i].Kind == CardWagon {
			c.Cards[i].Wagon, _ = types.ParseWagonType(c.Cards[i].ID)
		}
	}
	c.index()
	return c
}
