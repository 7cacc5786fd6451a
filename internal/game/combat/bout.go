package combat

import "fmt"

// bout carries the arenas and log shared by every attack resolved within a
// phase. Mutations go straight into the arenas.
type bout struct {
	e     *Engine
	party Party
	enc   Encounter
	log   Log
}

// roll draws a pool and, in debug mode, echoes it into the log.
func (b *bout) roll(who string, count, advantage int) []int {
	res := b.e.roller.Pool(count, 0, advantage)
	if b.e.settings.Debug {
		b.log.neutral("[debug] %s rolled %s", who, res)
	}
	return res.Kept
}

// attackTag labels an enemy attack when enemies make more than one per round.
func (b *bout) attackTag(n int) string {
	if b.e.settings.AttacksPerRound <= 1 {
		return ""
	}
	return fmt.Sprintf("[Attack %d/%d] ", n, b.e.settings.AttacksPerRound)
}

// defend resolves one standard defense exchange: character ti defends
// against enemy ei under the session damage model, taking bonus extra
// damage. It returns false when the enemy was defeated by a counter-attack.
func (b *bout) defend(ei, ti, advantage, bonus int, tag string) bool {
	en, pc := &b.enc[ei], &b.party[ti]
	rolls := b.roll(pc.Name, pc.DefenseScore, advantage)
	out := CalculateDefenseDamage(rolls, b.e.settings.DamageModel, pc)
	dmg := out.Damage + bonus

	b.log.enemy("%s%s attacks %s, who defends with %s: rolled %v.", tag, en.DisplayName(), pc.Name, pc.DefenseSkill, rolls)
	if dmg > 0 {
		pc.ApplyDamage(dmg)
		b.log.enemy("%s takes %d damage (%d HP left).", pc.Name, dmg, pc.CurrentHP)
	} else {
		b.log.player("%s takes no damage.", pc.Name)
	}
	if pc.IsDead() {
		b.log.enemy("%s has fallen!", pc.Name)
	}
	if out.Counter {
		return b.counter(ti, ei)
	}
	return true
}

// counter gives defender ti a free standard attack against enemy ei after
// rolling doubles. It returns false when the enemy is dead afterwards.
func (b *bout) counter(ti, ei int) bool {
	pc, en := &b.party[ti], &b.enc[ei]
	if pc.IsDead() || en.IsDead() {
		return !en.IsDead()
	}
	rolls := b.roll(pc.Name, pc.AttackScore, 0)
	dmg := CalculateDamage(rolls)
	b.log.player("Doubles! %s counter-attacks %s with %s: rolled %v.", pc.Name, en.DisplayName(), pc.AttackSkill, rolls)
	if dmg > 0 {
		en.ApplyDamage(dmg)
		b.log.player("%s deals %d damage to %s (%d HP left).", pc.Name, dmg, en.DisplayName(), en.CurrentHP)
	}
	if en.IsDead() {
		b.log.player("%s is defeated by the counter-attack!", en.DisplayName())
		return false
	}
	return true
}
