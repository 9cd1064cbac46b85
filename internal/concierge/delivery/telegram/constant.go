package telegram

const headerSecretToken = "X-Telegram-Bot-Api-Secret-Token"

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdStats = "/stats"
	cmdClear = "/clear"
)

const (
	msgStart = "🎬 *Welcome to FilmBuff!*\n\nAsk me anything about movies and TV shows: what's trending, details about a title, recommendations or the people behind them.\n\nType /help for examples."

	msgHelp = "*How to use:*\n\nJust ask a question, for example:\n" +
		"• `What movies are trending this week?`\n" +
		"• `Recommend psychological horror movies with good ratings`\n" +
		"• `Tell me details about Star Wars: The Empire Strikes Back`\n" +
		"• `Who directed Pulp Fiction and what else did he make?`\n" +
		"• `Movies similar to Interstellar`\n\n" +
		"/stats shows cache and quota usage, /clear empties the answer cache."

	msgCleared     = "🧹 Answer cache cleared."
	msgClearFailed = "Could not clear the answer cache. Please try again later."
	msgRateLimited = "⏳ I'm answering too many questions right now. Please try again in %d seconds."
	msgProcessErr  = "Something went wrong while handling your message. Please try again."
	cachedSuffix   = "\n\n_(cached answer)_"
)
