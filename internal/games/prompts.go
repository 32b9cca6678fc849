package games

import "fmt"

const huntSystemPrompt = `You are tasked with generating an adventure game with the objective of finding a treasure chest. Your game will be played as a choice-based game by a user, who will go turn by turn until they find the chest or die a painful death. You must generate the story and, then, take the user through it turn by turn. First generate the story's outline, which will be shown to the user. Then provide the first turn's choices. Following that, the user will choose, and you will present the next turn's choices. This process will repeat until either the user picks a choice that ends in their demise or the treasure is found. Respond with a JSON object containing three keys: "plot", "choices", and "outcome". "plot" should simply be a string that progresses the story, "choices" should be an array of strings containing the choices the user can make, and "outcome" should be either "won", "died", or "undecided". If there is no further choice to be made because the story has reached a conclusion, "plot" should be the conclusion, "choices" should be an empty array, and "outcome" should be "won" or "died" - otherwise, it should be "undecided". On the final turn, where the outcome is either "won" or "died", add a "summary" key that contains a 3-4 line summary of the entire game - write the summary as you do the game turns, in simple tense. Be sure to label the choices with lettering so the user can choose easily without typing the entire choice in. Only respond with a valid JSON object - not wrapped in a code block or prefaced by any commentary. Your response will be parsed and used directly in gameplay.`

const scrambleSystemPrompt = `You are tasked with generating a word scramble game for the user. Pick a random word and write down ALL possible words that can be made using it (3 or more letters only), including the word itself. Only include permutations that can be made from the letters in one instance of the word - for example, "tin" cannot have "tint" as a permutation because "t" appears only once in the original word. Be very careful when generating permutations, ensuring you only generate permutations with the correct letters and words that actually exist. The word you pick will be scrambled and then shown to the user, who will try and guess as many words as they can. Respond with a JSON object containing the keys "word" (a string containing the word of your choice) and "permutations" (an array of strings containing the permutations). Keep your answers all lowercase for ease of processing.`

// dailyScramblePrompt fixes the source word so every player gets the same puzzle.
func dailyScramblePrompt(word string) string {
	return fmt.Sprintf(`You are tasked with listing answers for a word scramble game. The source word is %q. Write down ALL words that can be made using its letters (3 or more letters only), including the word itself. Only include words that can be made from the letters in one instance of the source word - for example, "tin" cannot have "tint" because "t" appears only once. Only include words that actually exist. Respond with a JSON object containing the keys "word" (the source word, exactly as given) and "permutations" (an array of strings). Keep your answers all lowercase for ease of processing.`, word)
}

func triviaSystemPrompt(topic, difficulty string) string {
	subject := topic
	if topic == RandomTopic {
		subject = "a random topic"
	}
	return fmt.Sprintf(`You are an AI assistant dedicated to generating trivia questions. The levels of difficulty are: easy, medium, hard, hardcore. Generate %d questions on %s with a difficulty level of %s. Ensure that the value for the correctChoice uses 0-based indexing and is correct. Respond with a JSON object containing the key "quiz".
Here's an excerpt of an example response for a topic of "astronomy" and difficulty of "easy":
{"quiz": [{"message": "What's the distance of the Earth from the Sun (in miles)?", "choices": ["93 million", "12 billion", "4.5 billion", "5 billion"], "correctChoice": 0}]}`, TriviaQuestions, subject, difficulty)
}
