package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]any{
				"message": err.Error(),
				"cells":   coordinateViews(model.ErrorCoordinates(err)),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case SuggestResult:
		o.printSuggestions(v)
	case GameView:
		o.printGame(v)
	case TurnResult:
		o.printTurnResult(v)
	case BotTurnView:
		o.printBotTurn(v)
	case []StandingView:
		o.printStandings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CoordinatesView response type
type CoordinatesView struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BonusView response type
type BonusView struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// TileView response type
type TileView struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Tile      string `json:"tile"`
	Path      string `json:"path"`
	Rotation  int    `json:"rotation"`
	ThisTurn  bool   `json:"this_turn,omitempty"`
	Universal bool   `json:"universal,omitempty"`
}

// AnchorView response type
type AnchorView struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Exit string `json:"exit"`
}

// BoardView response type
type BoardView struct {
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Bonuses   []BonusView `json:"bonuses"`
	EndOfGame []int       `json:"end_of_game"`
	Tiles     []TileView  `json:"tiles,omitempty"`
	Anchor    AnchorView  `json:"anchor"`

	board    *model.Board
	thisTurn model.CoordinateSet
}

// SuggestionView response type
type SuggestionView struct {
	Rank       int        `json:"rank"`
	Score      int        `json:"score"`
	Placements []TileView `json:"placements"`
}

// SuggestResult response type
type SuggestResult struct {
	Hand        []string         `json:"hand"`
	Total       int              `json:"total_candidates"`
	Suggestions []SuggestionView `json:"suggestions"`
}

// PlayerView response type
type PlayerView struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Bot   bool     `json:"bot,omitempty"`
	Score int      `json:"score"`
	Rack  []string `json:"rack"`
}

// GameView response type
type GameView struct {
	ID            string       `json:"id"`
	State         string       `json:"state"`
	Turn          int          `json:"turn"`
	CurrentPlayer string       `json:"current_player"`
	TurnScore     int          `json:"turn_score"`
	Players       []PlayerView `json:"players"`
	Board         BoardView    `json:"board"`
	Winner        string       `json:"winner,omitempty"`
}

// TurnResult response type
type TurnResult struct {
	Player    string `json:"player"`
	Tiles     int    `json:"tiles"`
	Score     int    `json:"score"`
	GameEnded bool   `json:"game_ended"`
}

// BotTurnView response type
type BotTurnView struct {
	Player     string     `json:"player"`
	Action     string     `json:"action"`
	Score      int        `json:"score"`
	Placements []TileView `json:"placements,omitempty"`
	Returned   []string   `json:"returned,omitempty"`
}

// StandingView response type
type StandingView struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func coordinateViews(coords []model.Coordinates) []CoordinatesView {
	views := make([]CoordinatesView, 0, len(coords))
	for _, c := range coords {
		views = append(views, CoordinatesView{Row: c.Row, Col: c.Col})
	}
	return views
}

func tileView(tp model.TilePlacement) TileView {
	return TileView{
		Row:       tp.Coordinates.Row,
		Col:       tp.Coordinates.Col,
		Tile:      tp.PathType.Tile().String(),
		Path:      tp.PathType.TilePath().String(),
		Rotation:  tp.Rotation.Degrees(),
		Universal: tp.PathType.IsUniversal(),
	}
}

func tileViews(placements []model.TilePlacement) []TileView {
	views := make([]TileView, 0, len(placements))
	for _, tp := range placements {
		views = append(views, tileView(tp))
	}
	return views
}

func tileNames(tiles []model.Tile) []string {
	names := make([]string, 0, len(tiles))
	for _, t := range tiles {
		names = append(names, t.String())
	}
	return names
}

func anchorView(a model.Anchor) AnchorView {
	exit := a.Offset.String()
	if d, ok := a.Offset.Direction(); ok {
		exit = d.String()
	}
	return AnchorView{Row: a.Coordinates.Row, Col: a.Coordinates.Col, Exit: exit}
}

func newBoardView(b *model.Board, thisTurn model.CoordinateSet) BoardView {
	view := BoardView{
		Rows:     model.BoardRows,
		Cols:     model.BoardCols,
		Anchor:   anchorView(b.LastPlacement()),
		board:    b,
		thisTurn: thisTurn,
	}

	for row := range model.BoardRows {
		for col := range model.BoardCols {
			c := model.Coordinates{Row: row, Col: col}
			cell := b.Cell(c)
			if cell.Bonus != 0 {
				view.Bonuses = append(view.Bonuses, BonusView{Row: row, Col: col, Value: cell.Bonus})
			}
			if cell.Tile != nil {
				view.Tiles = append(view.Tiles, placedTileView(c, cell.Tile, thisTurn))
			}
		}
	}
	for row := range model.BoardRows {
		c := model.Coordinates{Row: row, Col: model.EndOfGameCol}
		cell := b.Cell(c)
		view.EndOfGame = append(view.EndOfGame, cell.Bonus)
		if cell.Tile != nil {
			view.Tiles = append(view.Tiles, placedTileView(c, cell.Tile, thisTurn))
		}
	}
	return view
}

func placedTileView(c model.Coordinates, p *model.Placement, thisTurn model.CoordinateSet) TileView {
	view := tileView(model.TilePlacement{Coordinates: c, PathType: p.PathType, Rotation: p.Rotation})
	view.ThisTurn = thisTurn.Has(c)
	return view
}

func newGameView(g *model.Game) GameView {
	view := GameView{
		ID:        string(g.ID),
		State:     string(g.State),
		Turn:      g.TurnNumber,
		TurnScore: g.Turn.Score.Total(),
		Board:     newBoardView(g.Board, g.Turn.Placed),
	}
	if current := g.CurrentPlayer(); current != nil && !g.IsComplete() {
		view.CurrentPlayer = current.DisplayName
	}
	if winner := g.Player(g.Winner); winner != nil {
		view.Winner = winner.DisplayName
	}
	for _, p := range g.Players {
		view.Players = append(view.Players, PlayerView{
			ID:    string(p.ID),
			Name:  p.DisplayName,
			Bot:   p.IsBot,
			Score: p.Score.Total(),
			Rack:  tileNames(p.Rack),
		})
	}
	return view
}

func standingViews(standings []model.Standing) []StandingView {
	views := make([]StandingView, 0, len(standings))
	for _, s := range standings {
		views = append(views, StandingView{Rank: s.Rank, Name: s.DisplayName, Score: s.Score})
	}
	return views
}

// Single letter per shape; lower case for the 135s
var pathGlyphs = map[model.TilePath]string{
	model.Straight: "S",
	model.Diagonal: "D",
	model.Center90: "C",
	model.Corner90: "K",
	model.Left45:   "L",
	model.Right45:  "R",
	model.Left135:  "l",
	model.Right135: "r",
}

// cellText renders a cell in three characters: shape, rotation and a marker
// (* universal, + placed this turn), or the bonus of an empty cell
func cellText(c model.Coordinates, cell *model.Cell, thisTurn model.CoordinateSet) string {
	if cell.Tile != nil {
		marker := " "
		switch {
		case thisTurn.Has(c):
			marker = "+"
		case cell.Tile.PathType.IsUniversal():
			marker = "*"
		}
		return fmt.Sprintf("%s%d%s", pathGlyphs[cell.Tile.PathType.TilePath()], int(cell.Tile.Rotation), marker)
	}
	if cell.Bonus != 0 {
		return fmt.Sprintf("%+3d", cell.Bonus)
	}
	return " . "
}

func (o *Output) printBoard(v BoardView) {
	b := v.board
	if b == nil {
		b = model.NewBoard()
	}

	fmt.Fprint(o.out, "    ")
	for col := range model.BoardCols {
		fmt.Fprintf(o.out, "%3d", col)
	}
	fmt.Fprintf(o.out, " |%3d\n", model.EndOfGameCol)

	for row := range model.BoardRows {
		var sb strings.Builder
		fmt.Fprintf(&sb, " %2d |", row)
		for col := range model.BoardCols {
			c := model.Coordinates{Row: row, Col: col}
			sb.WriteString(cellText(c, b.Cell(c), v.thisTurn))
		}
		end := model.Coordinates{Row: row, Col: model.EndOfGameCol}
		sb.WriteString(" |")
		sb.WriteString(cellText(end, b.Cell(end), v.thisTurn))
		if row == v.Anchor.Row && v.Anchor.Col < 0 {
			sb.WriteString(" <- start")
		}
		fmt.Fprintln(o.out, strings.TrimRight(sb.String(), " "))
	}

	fmt.Fprintf(o.out, "River ends at (%d, %d) heading %s\n", v.Anchor.Row, v.Anchor.Col, v.Anchor.Exit)
}

func (o *Output) printSuggestions(r SuggestResult) {
	fmt.Fprintf(o.out, "Hand: %s\n", strings.Join(r.Hand, ", "))
	if len(r.Suggestions) == 0 {
		fmt.Fprintln(o.out, "No legal moves")
		return
	}
	fmt.Fprintf(o.out, "Showing %d of %d candidates\n", len(r.Suggestions), r.Total)
	for _, s := range r.Suggestions {
		fmt.Fprintf(o.out, "%2d. score %d\n", s.Rank, s.Score)
		for _, tv := range s.Placements {
			fmt.Fprintf(o.out, "      %s\n", describeTile(tv))
		}
	}
}

func describeTile(tv TileView) string {
	name := tv.Path
	if tv.Universal {
		name = fmt.Sprintf("Universal as %s", tv.Path)
	}
	return fmt.Sprintf("%s rotated %d at (%d, %d)", name, tv.Rotation, tv.Row, tv.Col)
}

func (o *Output) printGame(g GameView) {
	o.printBoard(g.Board)
	fmt.Fprintf(o.out, "Turn %d", g.Turn)
	if g.CurrentPlayer != "" {
		fmt.Fprintf(o.out, " - %s to play, %d so far this turn", g.CurrentPlayer, g.TurnScore)
	}
	fmt.Fprintln(o.out)
	for _, p := range g.Players {
		label := p.Name
		if p.Bot {
			label += " (bot)"
		}
		fmt.Fprintf(o.out, "  %s: %d points", label, p.Score)
		if !p.Bot {
			fmt.Fprintf(o.out, ", rack %s", rackText(p.Rack))
		}
		fmt.Fprintln(o.out)
	}
	if g.State != string(model.GameStatePlaying) {
		fmt.Fprintf(o.out, "Game %s\n", g.State)
	}
}

func rackText(rack []string) string {
	parts := make([]string, 0, len(rack))
	for i, t := range rack {
		parts = append(parts, fmt.Sprintf("%d:%s", i, t))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (o *Output) printTurnResult(r TurnResult) {
	fmt.Fprintf(o.out, "%s scored %d with %d tiles\n", r.Player, r.Score, r.Tiles)
	if r.GameEnded {
		fmt.Fprintln(o.out, "The river reached the end of the board!")
	}
}

func (o *Output) printBotTurn(b BotTurnView) {
	switch b.Action {
	case string(bot.ActionPlay):
		fmt.Fprintf(o.out, "%s played %d tiles for %d\n", b.Player, len(b.Placements), b.Score)
		for _, tv := range b.Placements {
			fmt.Fprintf(o.out, "  %s\n", describeTile(tv))
		}
	case string(bot.ActionCantPlay):
		fmt.Fprintf(o.out, "%s can't play and draws a new rack\n", b.Player)
	}
}

func (o *Output) printStandings(standings []StandingView) {
	fmt.Fprintln(o.out, "Standings:")
	for _, s := range standings {
		fmt.Fprintf(o.out, "  %d. %s: %d points\n", s.Rank, s.Name, s.Score)
	}
}
