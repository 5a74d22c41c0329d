// Command nodesim builds a simulated AP/RT network in memory and reports its
// shape, in the spirit of the original demo driver: create a network, attach
// terminals, exercise a few heartbeats, print what resulted.
package main

import (
	"flag"
	"math/rand/v2"

	"nodesim/internal/config"
	"nodesim/internal/manager"
	"nodesim/internal/observability"
	"nodesim/internal/registry"
	"nodesim/internal/stats"
)

func main() {
	hubs := flag.Int("hubs", 0, "hubs per network (0 = config default)")
	aps := flag.Int("aps", 0, "APs per hub (0 = config default)")
	rts := flag.Int("rts", 0, "RTs per AP (0 = config default)")
	beats := flag.Int("beats", 10, "simulated heartbeats per RT")
	lossRate := flag.Float64("loss", 0.05, "simulated heartbeat loss rate")
	flag.Parse()

	cfg, path, err := config.Load()
	if err != nil {
		fallback := observability.InitLogger("nodesim", "info")
		fallback.Fatal().Err(err).Msg("loading config")
	}

	log := observability.InitLogger("nodesim", cfg.LogLevel)
	if path != "" {
		log.Info().Str("path", path).Msg("loaded config")
	}

	nms := manager.New(cfg, registry.New(), stats.NewTracker(), log)
	net, err := nms.AddNetwork(manager.NetworkSpec{
		Index:     manager.AutoIndex,
		Hubs:      *hubs,
		APsPerHub: *aps,
		RTsPerAP:  *rts,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("building network")
	}

	for _, hub := range net.Hubs() {
		for _, ap := range hub.APs() {
			for _, rt := range ap.RTs() {
				for i := 0; i < *beats; i++ {
					nms.RecordHeartbeat(rt.Addr, rand.Float64() >= *lossRate)
				}
			}
		}
	}

	graph := nms.Graph()
	netStats := nms.Stats(net.Addr, false)
	log.Info().
		Str("network", net.Addr.Tag()).
		Str("csi", net.CSI).
		Int("nodes", len(graph.Nodes)).
		Int("edges", len(graph.Edges)).
		Uint64("heartbeats", netStats.Children.Total()).
		Float64("success_rate", netStats.Children.SuccessRate()).
		Msg("simulation complete")

	for _, node := range graph.Nodes {
		log.Debug().Str("node", node.Label).Msg("topology node")
	}
}
