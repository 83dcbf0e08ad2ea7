package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/output"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type destinationsResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
		}
	}

	g, err := s.games.Create(req.FEN)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(output.SnapshotFor(g))
}

func (s *Server) listGames(c *fiber.Ctx) error {
	ids, err := s.games.List()
	if err != nil {
		return err
	}

	summaries := make([]output.Summary, 0, len(ids))
	for _, id := range ids {
		g, err := s.games.Get(id)
		if err != nil {
			s.cfg.Logf(1, "list: skipping game %s: %v", id, err)
			continue
		}
		summaries = append(summaries, output.SummaryFor(g))
	}
	return c.JSON(fiber.Map{"games": summaries})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(output.SnapshotFor(g))
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getBoard(c *fiber.Ctx) error {
	g, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}

	cfg := *s.cfg.Output
	cfg.Unicode = c.QueryBool("unicode", cfg.Unicode)
	return c.SendString(output.BoardString(g.Board, &cfg))
}

func (s *Server) playMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	g, err := s.games.Play(c.Params("id"), req.Move)
	if err != nil {
		return err
	}
	return c.JSON(output.SnapshotFor(g))
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	targets, err := s.games.LegalMoves(c.Params("id"), square)
	if err != nil {
		return err
	}

	resp := destinationsResponse{Square: square, Destinations: make([]string, 0, len(targets))}
	for _, p := range targets {
		resp.Destinations = append(resp.Destinations, p.String())
	}
	return c.JSON(resp)
}
