package entities

import (
	"image/color"

	"github.com/gonewx/loopline/pkg/config"
	"github.com/gonewx/loopline/pkg/types"
)

// 常用颜色
var (
	ColorWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorScrap   = color.RGBA{0xfb, 0xbf, 0x24, 0xff}
	ColorXP      = color.RGBA{0xa8, 0x55, 0xf7, 0xff}
	ColorDamage  = color.RGBA{0xef, 0x44, 0x44, 0xff}
	ColorHeal    = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	ColorShield  = color.RGBA{0x06, 0xb6, 0xd4, 0xff}
	ColorWarning = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	ColorFrozen  = color.RGBA{0x67, 0xe8, 0xf9, 0xff}
	ColorAcid    = color.RGBA{0x84, 0xcc, 0x16, 0xff}
	ColorDrone   = color.RGBA{0x4a, 0xde, 0x80, 0xff}
	ColorHostile = color.RGBA{0xf4, 0x3f, 0x5e, 0xff}
)

var enemyColors = map[types.EnemyType]color.RGBA{
	types.EnemyNormal:     {0xa8, 0x55, 0xf7, 0xff},
	types.EnemySwarmer:    {0xef, 0x44, 0x44, 0xff},
	types.EnemyDasher:     {0xf9, 0x73, 0x16, 0xff},
	types.EnemyMiner:      {0x71, 0x71, 0x7a, 0xff},
	types.EnemyBoomer:     {0xfa, 0xcc, 0x15, 0xff},
	types.EnemyTank:       {0x16, 0x65, 0x34, 0xff},
	types.EnemyShooter:    {0x38, 0xbd, 0xf8, 0xff},
	types.EnemyScreamer:   {0xf4, 0x72, 0xb6, 0xff},
	types.EnemyHealer:     {0x34, 0xd3, 0x99, 0xff},
	types.EnemyShielder:   {0x60, 0xa5, 0xfa, 0xff},
	types.EnemyCrusher:    {0x7f, 0x1d, 0x1d, 0xff},
	types.EnemyQueen:      {0xbe, 0x18, 0x5d, 0xff},
	types.EnemySniperBoss: {0xfa, 0xcc, 0x15, 0xff},
	types.EnemyTeslaBoss:  {0x4c, 0x1d, 0x95, 0xff},
	types.EnemyFortress:   {0x3f, 0x3f, 0x46, 0xff},
	types.EnemyPhantom:    {0x0f, 0x17, 0x2a, 0xff},
}

var wagonColors = map[types.WagonType]color.RGBA{
	types.WagonGunner:     {0x3b, 0x82, 0xf6, 0xff},
	types.WagonSniper:     {0x10, 0xb9, 0x81, 0xff},
	types.WagonFlame:      {0xf9, 0x73, 0x16, 0xff},
	types.WagonShield:     {0x06, 0xb6, 0xd4, 0xff},
	types.WagonMiner:      {0xfb, 0xbf, 0x24, 0xff},
	types.WagonTesla:      {0xa7, 0x8b, 0xfa, 0xff},
	types.WagonMortar:     {0x78, 0x71, 0x6c, 0xff},
	types.WagonCryo:       {0x67, 0xe8, 0xf9, 0xff},
	types.WagonDrone:      {0x4a, 0xde, 0x80, 0xff},
	types.WagonSpike:      {0x94, 0xa3, 0xb8, 0xff},
	types.WagonFabricator: {0xea, 0xb3, 0x08, 0xff},
	types.WagonStasis:     {0x81, 0x8c, 0xf8, 0xff},
	types.WagonMedic:      {0x22, 0xc5, 0x5e, 0xff},
	types.WagonRailgun:    {0x0e, 0xa5, 0xe9, 0xff},
	types.WagonAcid:       {0x84, 0xcc, 0x16, 0xff},
	types.WagonGravity:    {0x7c, 0x3a, 0xed, 0xff},
	types.WagonThumper:    {0xd9, 0x77, 0x06, 0xff},
	types.WagonMissile:    {0xdc, 0x26, 0x26, 0xff},
	types.WagonCluster:    {0xdb, 0x27, 0x77, 0xff},
	types.WagonOmni:       {0xf4, 0xf4, 0xf5, 0xff},
}

var depotColors = map[config.DepotReward]color.RGBA{
	config.DepotGearbox:  {0xfa, 0xcc, 0x15, 0xff},
	config.DepotExtender: {0x3b, 0x82, 0xf6, 0xff},
	config.DepotRecycler: {0xef, 0x44, 0x44, 0xff},
	config.DepotRepair:   {0x22, 0xc5, 0x5e, 0xff},
	config.DepotArmory:   {0xa8, 0x55, 0xf7, 0xff},
	config.DepotReactor:  {0xf9, 0x73, 0x16, 0xff},
	config.DepotShield:   {0x06, 0xb6, 0xd4, 0xff},
	config.DepotMagnet:   {0xec, 0x48, 0x99, 0xff},
	config.DepotDrill:    {0x94, 0xa3, 0xb8, 0xff},
	config.DepotLab:      {0x14, 0xb8, 0xa6, 0xff},
}

// EnemyColor 敌人原型的颜色
func EnemyColor(t types.EnemyType) color.RGBA {
	if c, ok := enemyColors[t]; ok {
		return c
	}
	return ColorWhite
}

// WagonColor 车厢种类的颜色，同时用作子弹颜色
func WagonColor(t types.WagonType) color.RGBA {
	if c, ok := wagonColors[t]; ok {
		return c
	}
	return ColorWhite
}

// DepotColor 站台奖励的颜色
func DepotColor(r config.DepotReward) color.RGBA {
	if c, ok := depotColors[r]; ok {
		return c
	}
	return ColorWarning
}
