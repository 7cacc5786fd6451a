package combat

import "fmt"

// RoundResult is the state after one call to SimulateRound.
type RoundResult struct {
	Party     Party
	Encounter Encounter
	Log       Log
	IsOver    bool
	Result    Result
	// ResultText is set only when this round decided the combat.
	ResultText string
}

// Informational messages for rounds that cannot run.
const (
	MsgMissingCombatants = "Cannot simulate: missing party or encounter"
	MsgAlreadyOver       = "Combat is already over"
)

// SimulateRound resolves round number round: a player phase followed by an
// enemy phase and a win check. The inputs are not modified; the returned
// arenas are the new source of truth.
//
// With an empty party or encounter, or a combat that is already decided, no
// state changes and a single informational entry is returned.
func (e *Engine) SimulateRound(party Party, enc Encounter, round int) RoundResult {
	if len(party) == 0 || len(enc) == 0 {
		return RoundResult{
			Party:     party,
			Encounter: enc,
			Log:       Log{{Message: MsgMissingCombatants, Category: CategoryNeutral}},
		}
	}
	if st := CheckWinConditions(enc, party); st.IsOver {
		return RoundResult{
			Party:     party,
			Encounter: enc,
			Log:       Log{{Message: MsgAlreadyOver, Category: CategoryNeutral}},
			IsOver:    true,
			Result:    st.Result,
		}
	}

	b := &bout{e: e, party: party.Clone(), enc: enc.Clone()}
	for i := range b.party {
		b.party[i].Incapacitated = false
	}

	b.log.neutral("--- Round %d ---", round)
	b.playerPhase()
	b.enemyPhase()

	st := CheckWinConditions(b.enc, b.party)
	res := RoundResult{Party: b.party, Encounter: b.enc, IsOver: st.IsOver, Result: st.Result}
	switch st.Result {
	case ResultWin:
		b.log.player("Victory! Every enemy has been defeated.")
		res.ResultText = ResultText(ResultWin, round)
	case ResultLose:
		b.log.enemy("Defeat! The whole party has fallen.")
		res.ResultText = ResultText(ResultLose, round)
	}
	if e.narrator != nil {
		if line := e.narrator.RoundEnd(round, st.AliveParty, st.AliveEnemies); line != "" {
			b.log.neutral("%s", line)
		}
	}
	res.Log = b.log
	return res
}

// ResultText formats the terminal result line for a decided combat.
func ResultText(r Result, round int) string {
	switch r {
	case ResultWin:
		return fmt.Sprintf("The players WON after %d rounds", round)
	case ResultLose:
		return fmt.Sprintf("The players LOST after %d rounds", round)
	default:
		return ""
	}
}

// playerPhase has every living, non-incapacitated character attack the
// weakest living enemy, in party order.
func (b *bout) playerPhase() {
	for i := range b.party {
		pc := &b.party[i]
		if pc.IsDead() {
			continue
		}
		if pc.Incapacitated {
			b.log.neutral("%s is incapacitated and cannot attack this round.", pc.Name)
			continue
		}
		ti, ok := b.enc.Weakest()
		if !ok {
			return
		}
		target := &b.enc[ti]
		rolls := b.roll(pc.Name, pc.AttackScore, 0)
		dmg := CalculateDamage(rolls)
		b.log.player("%s attacks %s with %s: rolled %v.", pc.Name, target.DisplayName(), pc.AttackSkill, rolls)
		if dmg == 0 {
			b.log.player("%s misses.", pc.Name)
			continue
		}
		target.ApplyDamage(dmg)
		b.log.player("%s deals %d damage to %s (%d HP left).", pc.Name, dmg, target.DisplayName(), target.CurrentHP)
		if target.IsDead() {
			b.log.player("%s is defeated!", target.DisplayName())
		}
	}
}

// enemyPhase has every living enemy make its attacks for the round against
// the weakest living character, re-evaluated before each attack.
func (b *bout) enemyPhase() {
	for ei := range b.enc {
		for n := 1; n <= b.e.settings.AttacksPerRound; n++ {
			if b.enc[ei].IsDead() {
				break
			}
			ti, ok := b.party.Weakest()
			if !ok {
				return
			}
			if !b.enemyAttack(ei, ti, n) {
				break
			}
		}
	}
}

// enemyAttack resolves attack n of enemy ei against character ti, using a
// random unused ability when abilities are enabled. It returns false when
// the enemy fell to a counter-attack.
func (b *bout) enemyAttack(ei, ti, n int) bool {
	en := &b.enc[ei]
	if b.e.settings.AbilitiesEnabled {
		if avail := en.AvailableAbilities(); len(avail) > 0 {
			pick := avail[b.e.roller.Intn(len(avail))]
			en.MarkUsed(pick.Name)
			return b.ability(ei, ti, pick, n)
		}
	}
	return b.defend(ei, ti, 0, 0, b.attackTag(n))
}
