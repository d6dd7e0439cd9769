package dashboard

var defaultMissions = Missions{
	Daily: []Mission{
		{ID: 1, Subject: "Math", Title: "Linear Equations Practice", Time: "15 min", Reward: "50 XP", State: MissionStart},
		{ID: 2, Subject: "Language", Title: "Reading Comprehension", Time: "10 min", Reward: "30 XP", State: MissionDone},
		{ID: 3, Subject: "History", Title: "Chilean Independence", Time: "20 min", Reward: "60 XP", State: MissionStart},
	},
	Weekly: []Mission{
		{ID: 4, Subject: "Math", Title: "Complete Unit 3: Functions", Time: "2 hrs", Reward: "500 XP", State: MissionProgress},
		{ID: 5, Subject: "Physics", Title: "Lab Report: Motion", Time: "45 min", Reward: "200 XP", State: MissionStart},
	},
	Story: []Mission{
		{ID: 6, Subject: "Campaign", Title: "Chapter 2: The Algebra Realm", Time: "Ongoing", Reward: "Badge", State: MissionProgress},
	},
	Side: []Mission{
		{ID: 7, Subject: "Challenge", Title: "Speed Math: Mental Calculation", Time: "5 min", Reward: "10 SP", State: MissionStart},
	},
}

var defaultEvents = []Event{
	{ID: 1, Title: "Exam Sprint Week", Subtitle: "Boost your PAES score", Color: "from-indigo-600 to-violet-600"},
	{ID: 2, Title: "Math Boss Challenge", Subtitle: "Beat the Function Dragon", Color: "from-rose-600 to-orange-600"},
}

var defaultActivities = []Activity{
	{ID: 1, Text: "You unlocked 'Equation Explorer'", Time: "2h ago", Icon: "🏆"},
	{ID: 2, Text: "Teacher left feedback on essay", Time: "4h ago", Icon: "💬"},
	{ID: 3, Text: "New PAES simulator available", Time: "1d ago", Icon: "🆕"},
}
