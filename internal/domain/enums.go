package domain

// TopicStatus is the learning state of a topic.
type TopicStatus string

const (
	TopicStatusNew       TopicStatus = "new"
	TopicStatusLearning  TopicStatus = "learning"
	TopicStatusRevised   TopicStatus = "revised"
	TopicStatusCompleted TopicStatus = "completed"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusNew, TopicStatusLearning, TopicStatusRevised, TopicStatusCompleted:
		return true
	}
	return false
}

// Difficulty is the user-assigned difficulty of a topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ScheduleAction is the kind of event recorded in a topic's schedule history.
type ScheduleAction string

const (
	ScheduleActionScheduled   ScheduleAction = "scheduled"
	ScheduleActionRescheduled ScheduleAction = "rescheduled"
	ScheduleActionCompleted   ScheduleAction = "completed"
	ScheduleActionSkipped     ScheduleAction = "skipped"
)

func (a ScheduleAction) String() string { return string(a) }

func (a ScheduleAction) IsValid() bool {
	switch a {
	case ScheduleActionScheduled, ScheduleActionRescheduled, ScheduleActionCompleted, ScheduleActionSkipped:
		return true
	}
	return false
}

// DailyStudyGoal is how much time a user plans to study per day.
type DailyStudyGoal string

const (
	DailyGoal30Minutes DailyStudyGoal = "30 minutes"
	DailyGoal1Hour     DailyStudyGoal = "1 hour"
	DailyGoal2Hours    DailyStudyGoal = "2 hours"
	DailyGoal3Hours    DailyStudyGoal = "3 hours"
	DailyGoal4PlusHour DailyStudyGoal = "4+ hours"
)

func (g DailyStudyGoal) String() string { return string(g) }

func (g DailyStudyGoal) IsValid() bool {
	switch g {
	case DailyGoal30Minutes, DailyGoal1Hour, DailyGoal2Hours, DailyGoal3Hours, DailyGoal4PlusHour:
		return true
	}
	return false
}

// PriorityWeight biases the priority score towards easy or hard topics.
type PriorityWeight string

const (
	PriorityWeightBalanced  PriorityWeight = "Balanced"
	PriorityWeightFocusHard PriorityWeight = "Focus on Hard Topics"
	PriorityWeightFocusEasy PriorityWeight = "Focus on Easy Topics"
)

func (w PriorityWeight) String() string { return string(w) }

func (w PriorityWeight) IsValid() bool {
	switch w {
	case PriorityWeightBalanced, PriorityWeightFocusHard, PriorityWeightFocusEasy:
		return true
	}
	return false
}

// ReviewFrequency is a stored preference. The planner does not read it yet.
type ReviewFrequency string

const (
	ReviewFrequencyStandard  ReviewFrequency = "Standard"
	ReviewFrequencyFrequent  ReviewFrequency = "Frequent"
	ReviewFrequencyIntensive ReviewFrequency = "Intensive"
)

func (f ReviewFrequency) String() string { return string(f) }

func (f ReviewFrequency) IsValid() bool {
	switch f {
	case ReviewFrequencyStandard, ReviewFrequencyFrequent, ReviewFrequencyIntensive:
		return true
	}
	return false
}
