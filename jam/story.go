package jam

import (
	"math/rand/v2"
	"slices"
	"strings"
)

type phrase struct {
	text  string
	needs []Effect
}

func p(text string, needs ...Effect) phrase { return phrase{text, needs} }

// storySlots are filled left to right, one phrase per slot.
var storySlots = [][]phrase{
	{p("I was scavenging for food when", Hunger), p("The other day,"), p("In a firefight,"), p("Before the war,")},
	{p("a raider far stronger than me", SuperHumanStrength), p("a rival gang"), p("a mutated snake with potent venom", CureAll),
		p("an Old War soldier"), p("an enemy fuel convoy"), p("a feral dog, riddled with diseases,", CureAll)},
	{p("angrily"), p("furiously"), p("violently"), p("suddenly")},
	{p("stabbed", GreaterHeal), p("robbed"), p("destroyed"), p("hunted"), p("shot at")},
	{p("my raiding party"), p("me"), p("my war-dog"), p("my armoured truck, leaving me slow,", Speed), p("my food supplies", Hunger)},
	{p("whilst I was"), p("when I was"), p("after I was caught"), p("for")},
	{p("trying to steal"), p("destroying"), p("escaping with", Speed), p("running over"), p("gambling away"), p("poisoning", Poison)},
	{p("their water supply,"), p("their supplies,"), p("their credits,"), p("their jam,"), p("their fuel,"),
		p("their Old World relics,"), p("their pre-war iron bird,", Flight)},
	{p("so we"), p("so I"), p("and then I"), p("and then we")},
	{p("engaged them in hand to hand combat,"), p("began shooting at them,"), p("turned and ran away,"),
		p("offered them a truce,"), p("told them to surrender,")},
	{p("but then"), p("unfortunately this was interrupted when"), p("before this could happen"), p("suddenly, out of nowhere")},
	{p("a huge explosion went off, which caused"), p("a passionate glance was exchanged, which caused"),
		p("a poisoned trap clamped on my leg, causing", CureAll), p("a severe gust of rad-wind tore through the valley, causing"),
		p("my body became suddenly weak, causing", SuperHumanStrength)},
	{p("my leg to fall off.", GreaterHeal), p("my raid members to become violently sick.", CureAll),
		p("my matches to get wet."), p("everything to go dark.", NightVision)},
}

const storyRequest = "As you can tell, I am in desperate need of assistance, do you have any jam that could help me ensure this doesn't happen again?"

// Story is a customer's tale of woe and the effects that would help.
type Story struct {
	Text  string
	Needs []Effect
}

// Satisfied returns how many of the story's needs the jar meets.
func (s Story) Satisfied(j Jar) int {
	n := 0
	for _, e := range s.Needs {
		if j.Has(e) {
			n++
		}
	}
	return n
}

// GenerateStory builds a story by picking one phrase per slot. Needs are
// deduplicated and listed in book order.
func GenerateStory(r *rand.Rand) Story {
	var (
		b     strings.Builder
		needs []Effect
	)
	for _, slot := range storySlots {
		ph := slot[r.IntN(len(slot))]
		b.WriteString(ph.text)
		b.WriteByte(' ')
		for _, e := range ph.needs {
			if !slices.Contains(needs, e) {
				needs = append(needs, e)
			}
		}
	}
	b.WriteString(storyRequest)
	slices.Sort(needs)
	return Story{Text: b.String(), Needs: needs}
}
