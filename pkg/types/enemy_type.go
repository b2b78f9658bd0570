// Package types 定义共享的基础类型
package types

import "fmt"

// EnemyType 定义敌人的原型
// 精英/稀有是叠加在原型上的属性倍率，而不是独立类型
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota

	// 普通原型
	EnemyNormal   // 普通
	EnemySwarmer  // 蜂群（低血高速，绕行逼近）
	EnemyDasher   // 冲刺者（走走停停，间歇冲刺）
	EnemyMiner    // 布雷者（周期性留下地雷）
	EnemyBoomer   // 自爆者（接触即爆炸）
	EnemyTank     // 坦克（高血低速）
	EnemyShooter  // 射手（保持距离远程射击）
	EnemyScreamer // 尖叫者（给周围友军加速）
	EnemyHealer   // 治疗者（治疗周围友军）
	EnemyShielder // 护盾者（给周围友军加护盾）

	// Boss
	EnemyCrusher    // 碾压者（周期性冲锋）
	EnemyQueen      // 虫后（召唤蜂群）
	EnemySniperBoss // 狙击 Boss（远程爆炸弹）
	EnemyTeslaBoss  // 电能 Boss（范围电击）
	EnemyFortress   // 堡垒（召唤射手）
	EnemyPhantom    // 幻影（周期性瞬移）

	enemyTypeCount
)

var enemyTypeNames = [enemyTypeCount]string{
	EnemyUnknown:    "unknown",
	EnemyNormal:     "normal",
	EnemySwarmer:    "swarmer",
	EnemyDasher:     "dasher",
	EnemyMiner:      "miner",
	EnemyBoomer:     "boomer",
	EnemyTank:       "tank",
	EnemyShooter:    "shooter",
	EnemyScreamer:   "screamer",
	EnemyHealer:     "healer",
	EnemyShielder:   "shielder",
	EnemyCrusher:    "crusher",
	EnemyQueen:      "queen",
	EnemySniperBoss: "sniper_boss",
	EnemyTeslaBoss:  "tesla_boss",
	EnemyFortress:   "fortress",
	EnemyPhantom:    "phantom",
}

// String 返回配置文件中使用的标识符
func (t EnemyType) String() string {
	if t < 0 || t >= enemyTypeCount {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return enemyTypeNames[t]
}

// IsBoss 是否为 Boss 原型
func (t EnemyType) IsBoss() bool {
	return t >= EnemyCrusher && t < enemyTypeCount
}

// IsSupport 是否为辅助型原型（小队首领只会从这些类型中选出）
func (t EnemyType) IsSupport() bool {
	return t == EnemyScreamer || t == EnemyHealer || t == EnemyShielder
}

// ParseEnemyType 将标识符解析为 EnemyType
func ParseEnemyType(s string) (EnemyType, error) {
	for i, name := range enemyTypeNames {
		if EnemyType(i) != EnemyUnknown && name == s {
			return EnemyType(i), nil
		}
	}
	return EnemyUnknown, fmt.Errorf("unknown enemy type %q", s)
}

// AllEnemyTypes 返回所有有效的敌人类型（不含 EnemyUnknown）
func AllEnemyTypes() []EnemyType {
	out := make([]EnemyType, 0, enemyTypeCount-1)
	for t := EnemyNormal; t < enemyTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// UnmarshalText 支持在 YAML 中直接使用标识符
func (t *EnemyType) UnmarshalText(text []byte) error {
	parsed, err := ParseEnemyType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText 输出标识符
func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
