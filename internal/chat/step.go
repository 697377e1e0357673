package chat

import "strconv"

// Step identifies what the conversation is waiting for
type Step int

const (
	StepStart          Step = 0
	StepName           Step = 1
	StepPhone          Step = 2
	StepEmail          Step = 3
	StepLocation       Step = 4
	StepExperience     Step = 5
	StepMoreExperience Step = 6
	StepRole           Step = 7
	StepChooseJob      Step = 8
	StepGenerating     Step = 9
	StepDone           Step = 10
	StepDeclined       Step = 99
)

var stepNames = map[Step]string{
	StepStart:          "start",
	StepName:           "name",
	StepPhone:          "phone",
	StepEmail:          "email",
	StepLocation:       "location",
	StepExperience:     "experience",
	StepMoreExperience: "more_experience",
	StepRole:           "role",
	StepChooseJob:      "choose_job",
	StepGenerating:     "generating",
	StepDone:           "done",
	StepDeclined:       "declined",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "step(" + strconv.Itoa(int(s)) + ")"
}

// Terminal reports whether the conversation has ended
func (s Step) Terminal() bool {
	return s == StepDone || s == StepDeclined
}
