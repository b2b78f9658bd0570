package components

// HealthComponent 存储可受伤实体（机车、敌人）的生命值与护盾
// 护盾先于生命值吸收伤害
type HealthComponent struct {
	HP        float64 // 当前生命值
	MaxHP     float64 // 最大生命值
	Shield    float64 // 当前护盾
	MaxShield float64 // 护盾上限（0 表示无上限约束）
}

// Damage 扣除伤害，返回实际扣除的生命值
func (h *HealthComponent) Damage(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if h.Shield > 0 {
		absorbed := min(h.Shield, amount)
		h.Shield -= absorbed
		amount -= absorbed
	}
	h.HP -= amount
	return amount
}

// Heal 回复生命值，不超过上限
func (h *HealthComponent) Heal(amount float64) {
	h.HP = min(h.MaxHP, h.HP+amount)
}

// IsDead 生命值是否耗尽
func (h *HealthComponent) IsDead() bool {
	return h.HP <= 0
}
