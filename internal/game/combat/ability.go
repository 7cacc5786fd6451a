package combat

// AbilityKind enumerates the special-attack effects an enemy aspect can carry.
// The zero value is the fallback for unrecognized codes.
type AbilityKind int

const (
	AbilityUnrecognized AbilityKind = iota // resolves as a standard attack
	AbilityIncapacitate
	AbilityDualWieldBarrage
	AbilityHighNoonDuel
	AbilityDesertMirage
	AbilityVioletHaze
	AbilityBonniesRevenge
)

var abilityCodes = map[string]AbilityKind{
	"incapacitate":     AbilityIncapacitate,
	"dualWieldBarrage": AbilityDualWieldBarrage,
	"highNoonDuel":     AbilityHighNoonDuel,
	"desertMirage":     AbilityDesertMirage,
	"violetHaze":       AbilityVioletHaze,
	"bonniesRevenge":   AbilityBonniesRevenge,
}

// AbilityKindFor maps an aspect's ability code onto its kind.
//
// Postcondition: unknown codes map to AbilityUnrecognized.
func AbilityKindFor(code string) AbilityKind {
	return abilityCodes[code]
}

// String returns the ability code for k, or "unrecognized".
func (k AbilityKind) String() string {
	switch k {
	case AbilityIncapacitate:
		return "incapacitate"
	case AbilityDualWieldBarrage:
		return "dualWieldBarrage"
	case AbilityHighNoonDuel:
		return "highNoonDuel"
	case AbilityDesertMirage:
		return "desertMirage"
	case AbilityVioletHaze:
		return "violetHaze"
	case AbilityBonniesRevenge:
		return "bonniesRevenge"
	default:
		return "unrecognized"
	}
}

// AbilityContext is everything an ability effect needs. Party and Encounter
// are the live arenas; effects update their entries in place.
type AbilityContext struct {
	Enemy           int // index into Encounter of the attacker
	Target          int // index into Party of the chosen target
	Aspect          Aspect
	Party           Party
	Encounter       Encounter
	AttackNumber    int
	AttacksPerRound int
}

// AbilityOutcome reports what an ability effect did.
type AbilityOutcome struct {
	Log Log
	// ShouldContinue is false when the attacker was defeated by a
	// counter-attack and any remaining targets must be skipped.
	ShouldContinue bool
}

// ResolveAbility applies the effect of ctx.Aspect. The session damage model
// comes from the engine settings.
//
// Precondition: ctx.Enemy and ctx.Target index living combatants.
func (e *Engine) ResolveAbility(ctx AbilityContext) AbilityOutcome {
	b := &bout{e: e, party: ctx.Party, enc: ctx.Encounter}
	cont := b.ability(ctx.Enemy, ctx.Target, ctx.Aspect, ctx.AttackNumber)
	return AbilityOutcome{Log: b.log, ShouldContinue: cont}
}

func (b *bout) ability(ei, ti int, aspect Aspect, attackNo int) bool {
	en, pc := &b.enc[ei], &b.party[ti]
	kind := AbilityKindFor(aspect.AbilityCode)
	tag := b.attackTag(attackNo)

	if kind == AbilityUnrecognized {
		b.log.neutral("%s%s tries %s, but ability %q is not recognized; resolving as a standard attack.",
			tag, en.DisplayName(), aspect.Name, aspect.AbilityCode)
		return b.defend(ei, ti, 0, 0, tag)
	}

	b.log.enemy("%s%s uses %s!", tag, en.DisplayName(), aspect.Name)
	if b.e.narrator != nil {
		if line := b.e.narrator.Ability(kind.String(), en.DisplayName(), pc.Name); line != "" {
			b.log.neutral("%s", line)
		}
	}

	switch kind {
	case AbilityIncapacitate:
		return b.incapacitate(ei, ti, tag)
	case AbilityDualWieldBarrage:
		b.log.enemy("%s draws a second weapon and unloads on the whole party!", en.DisplayName())
		return b.everyone(ei, 1, tag)
	case AbilityVioletHaze:
		b.log.enemy("A violet haze rolls over the party.")
		return b.everyone(ei, 0, tag)
	case AbilityHighNoonDuel:
		b.log.enemy("%s calls %s out. The clock strikes noon.", en.DisplayName(), pc.Name)
		return b.defend(ei, ti, 0, 0, tag)
	case AbilityDesertMirage:
		b.log.enemy("The air shimmers around %s as a mirage takes shape.", pc.Name)
		return b.defend(ei, ti, 0, 0, tag)
	case AbilityBonniesRevenge:
		bonus := b.enc.Defeated(ei)
		if bonus > 0 {
			b.log.enemy("%s seeks revenge for %d fallen allies (+%d damage).", en.DisplayName(), bonus, bonus)
		}
		return b.defend(ei, ti, 0, bonus, tag)
	default:
		return b.defend(ei, ti, 0, 0, tag)
	}
}

// everyone attacks every living party member once, in party order.
// It stops early when the attacker falls to a counter-attack.
func (b *bout) everyone(ei, advantage int, tag string) bool {
	for i := range b.party {
		if b.party[i].IsDead() {
			continue
		}
		if !b.defend(ei, i, advantage, 0, tag) {
			return false
		}
	}
	return true
}

func (b *bout) incapacitate(ei, ti int, tag string) bool {
	pc := &b.party[ti]
	rolls := b.roll(pc.Name, pc.DefenseScore, 0)
	out := CalculateIncapacitateDefense(rolls)
	b.log.enemy("%s%s resists with %s: rolled %v.", tag, pc.Name, pc.DefenseSkill, rolls)

	switch {
	case out.FullyIncapacitated:
		pc.CurrentHP = 0
		b.log.enemy("%s is fully incapacitated!", pc.Name)
	case out.Incapacitated:
		pc.Incapacitated = true
		b.log.enemy("%s is incapacitated!", pc.Name)
	case out.Damage > 0:
		pc.ApplyDamage(out.Damage)
		b.log.enemy("%s takes %d damage (%d HP left).", pc.Name, out.Damage, pc.CurrentHP)
	default:
		b.log.player("%s shrugs it off.", pc.Name)
	}
	if pc.IsDead() {
		b.log.enemy("%s has fallen!", pc.Name)
	}
	if out.Counter {
		return b.counter(ti, ei)
	}
	return true
}
