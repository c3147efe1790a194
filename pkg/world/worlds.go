package world

// worldOrder fixes the display order of the zones.
var worldOrder = []string{
	"skeleton-birthday",
	"knight-space",
	"barbarian-school",
	"skeleton-pizza",
	"adventurers-picnic",
	"dungeon-concert",
	"mage-kitchen",
}

var worlds = map[string]*World{
	"skeleton-birthday": {
		ID:          "skeleton-birthday",
		Label:       "Skeleton's Birthday Bash",
		Emoji:       "\U0001F480",
		Color:       "#7C3AED",
		Hook:        "It's the Skeleton's birthday and nobody knows what to do! You're in charge!",
		Placeholder: "What should happen at the skeleton's birthday party?",
		Characters:  []string{"skeleton_warrior", "skeleton_mage", "knight", "mage", "clown", "robot"},
		Props:       []string{"cake", "present_A_red", "present_B_blue", "table_long", "chair", "balloon", "torch", "barrel", "banner_blue", "banner_red"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Cheering", "Waving",
			"Sit_Chair_Down", "Sit_Chair_Idle", "Hit_A", "Interact", "PickUp", "Throw",
			"Skeletons_Taunt", "Skeletons_Idle", "Skeletons_Awaken_Floor", "Skeletons_Death_Resurrect",
			"Jump_Full_Short", "Push_Ups", "Headbutt", "Death_A",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "hearts-float", "stars-spin", "question-marks", "laugh-tears", "sparkle-magic", "sad-cloud"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"knight-space": {
		ID:          "knight-space",
		Label:       "Space Station Emergency",
		Emoji:       "\U0001F680",
		Color:       "#3B82F6",
		Hook:        "The space station is drifting and the robots are floating around doing nothing! Fix this mess!",
		Placeholder: "How do you fix the space station? Who does what?",
		Characters:  []string{"space_ranger", "robot", "robot_two", "engineer", "knight"},
		Props:       []string{"rocket", "basemodule_A", "cargo_A", "solarpanel", "dome", "flag"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Cheering", "Waving",
			"Interact", "PickUp", "Throw", "Hammer", "Hammering",
			"Jump_Full_Short", "Jump_Idle", "Jump_Full_Long",
			"Work_A", "Work_B", "Working_A",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "stars-spin", "question-marks", "sparkle-magic", "fire-sneeze"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"barbarian-school": {
		ID:          "barbarian-school",
		Label:       "Monster Recess",
		Emoji:       "\U0001F3C3",
		Color:       "#EF4444",
		Hook:        "The monsters got to the playground and recess is WILD! What happens?",
		Placeholder: "What happens at monster recess? Who plays what?",
		Characters:  []string{"barbarian", "clown", "ninja", "robot", "caveman"},
		Props:       []string{"slide", "swing", "seesaw", "sandbox", "merry_go_round", "fence", "tree"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Running_B", "Cheering", "Waving",
			"Jump_Full_Short", "Jump_Full_Long", "Jump_Start", "Jump_Land",
			"Interact", "PickUp", "Throw", "Push_Ups", "Headbutt",
			"Sit_Floor_Down", "Sit_Floor_Idle",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "laugh-tears", "question-marks", "stars-spin", "hearts-float"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"skeleton-pizza": {
		ID:          "skeleton-pizza",
		Label:       "Pizza Pandemonium",
		Emoji:       "\U0001F355",
		Color:       "#FBBF24",
		Hook:        "Orders are flying in and nobody can cook! Run this restaurant before it burns down!",
		Placeholder: "How do you save the restaurant? Who cooks what?",
		Characters:  []string{"skeleton_warrior", "clown", "superhero", "survivalist"},
		Props:       []string{"pizza", "pizza_pepperoni", "oven", "plate", "pan", "pot", "stove", "chair_A"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Running_B", "Cheering", "Waving",
			"Interact", "PickUp", "Throw", "Work_A", "Working_A",
			"Skeletons_Taunt", "Skeletons_Idle",
			"Hit_A", "Jump_Full_Short",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "fire-sneeze", "laugh-tears", "question-marks", "stars-spin"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"adventurers-picnic": {
		ID:          "adventurers-picnic",
		Label:       "Forest Mystery",
		Emoji:       "\U0001F332",
		Color:       "#22C55E",
		Hook:        "The adventurers found a strange clearing in the forest! Something magical is happening...",
		Placeholder: "What magical thing is happening in the forest? What do the adventurers do?",
		Characters:  []string{"ranger", "druid", "barbarian", "ninja", "rogue"},
		Props:       []string{"tree", "rock", "bush", "torch", "bench", "picnic_blanket", "apple", "basket"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Cheering", "Waving",
			"Interact", "PickUp", "Throw", "Sneaking", "Crouching",
			"Ranged_Bow_Draw", "Ranged_Bow_Release",
			"Sit_Floor_Down", "Sit_Floor_Idle", "Lie_Down", "Lie_Idle",
		},
		Effects: []string{"confetti-burst", "sparkle-magic", "hearts-float", "stars-spin", "question-marks", "splash", "sad-cloud"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"dungeon-concert": {
		ID:          "dungeon-concert",
		Label:       "Dungeon Escape",
		Emoji:       "\U0001F5DD",
		Color:       "#F97316",
		Hook:        "You're trapped in a dungeon! There's a locked chest, a sleeping guard, and a secret door. What do you do?",
		Placeholder: "How do you escape the dungeon? What's your plan?",
		Characters:  []string{"knight", "mage", "rogue", "skeleton_warrior", "necromancer"},
		Props:       []string{"chest", "barrel", "torch", "banner_blue", "banner_red", "table_long", "bone", "book", "potion"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Cheering", "Waving",
			"Interact", "PickUp", "Throw", "Sneaking", "Crouching",
			"Melee_1H_Attack_Chop", "Melee_1H_Attack_Stab", "Melee_Block",
			"Ranged_Magic_Spellcasting", "Ranged_Magic_Shoot",
			"Lockpick", "Lockpicking",
			"Skeletons_Awaken_Floor", "Skeletons_Taunt",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "sparkle-magic", "stars-spin", "question-marks", "fire-sneeze", "sad-cloud"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},

	"mage-kitchen": {
		ID:          "mage-kitchen",
		Label:       "Cooking Catastrophe",
		Emoji:       "\U0001F9D9",
		Color:       "#A855F7",
		Hook:        "The mage tried to cook with magic and now the kitchen is ALIVE! Tame it!",
		Placeholder: "How does the mage tame the wild kitchen? What spells help?",
		Characters:  []string{"mage", "witch", "caveman", "superhero", "skeleton_minion"},
		Props:       []string{"stove", "sink", "fridge", "pot", "pan", "cake", "pie", "bread", "plate"},
		Animations: []string{
			"Idle_A", "Walking_A", "Running_A", "Cheering", "Waving",
			"Interact", "PickUp", "Throw",
			"Ranged_Magic_Spellcasting", "Ranged_Magic_Spellcasting_Long", "Ranged_Magic_Shoot", "Ranged_Magic_Summon",
			"Hit_A", "Hit_B", "Jump_Full_Short",
			"Skeletons_Idle",
		},
		Effects: []string{"confetti-burst", "explosion-cartoon", "sparkle-magic", "fire-sneeze", "stars-spin", "question-marks", "laugh-tears", "splash"},
		Sounds:  []string{"spawn", "move", "react", "success", "partial", "fail"},
	},
}
