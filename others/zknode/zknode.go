package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/Lzww0608/ruuid"
)

// Constants for the ZooKeeper-backed node identity registry.
//
// Version 1 UUIDs embed a 48-bit node address. Hosts without a stable MAC
// (containers, VMs) would otherwise fall back to a per-process random node,
// so this program assigns each service instance a cluster-unique node id
// through ZooKeeper and keeps it across restarts.
const (
	ZKRootPath = "/ruuid_node_ids" // Root path in ZooKeeper for node registration

	MaxNodeIndex = 1 << 32 // node indexes live in the low 4 bytes of the node id
)

// NodeRegistry maintains this instance's registration in ZooKeeper.
type NodeRegistry struct {
	zkClient *zk.Conn // ZooKeeper client connection
	service  string   // Service name (affects ZK node path)
	port     int      // Port (used to derive node uniqueness)

	nodeIndex int64 // Cluster-unique index backing the derived node id
	lastTime  int64 // Last timestamp this registration was refreshed
}

// NodeState is the info stored for each registration in both ZK and the cache file.
type NodeState struct {
	LastTime   int64 `json:"last_time"`   // Last timestamp this node was active
	CreateTime int64 `json:"create_time"` // Creation timestamp
	NodeIndex  int64 `json:"node_index"`  // Assigned node index
}

// Config is read from a JSON file passed as the first argument.
type Config struct {
	Servers []string `json:"servers"` // ZooKeeper ensemble addresses
	Service string   `json:"service"` // Logical service name
	Port    int      `json:"port"`    // Local port, part of the registration key
}

// NewNodeRegistry connects to ZooKeeper and registers or recovers this
// instance's node index.
func NewNodeRegistry(zkServers []string, serviceName string, port int) (*NodeRegistry, error) {
	registry := &NodeRegistry{
		service: serviceName,
		port:    port,
	}

	c, _, err := zk.Connect(zkServers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}
	registry.zkClient = c

	index, err := registry.registerOrRecover()
	if err != nil {
		return nil, err
	}

	registry.nodeIndex = index
	log.Printf("node registry initialized with node index: %d", index)

	// Periodically refresh the registration in ZooKeeper and the local cache
	go registry.scheduledRefresh()
	return registry, nil
}

// registerOrRecover registers this instance in ZooKeeper or recovers its
// assignment from the local cache or an existing znode.
func (r *NodeRegistry) registerOrRecover() (int64, error) {
	servicePath := fmt.Sprintf("%s/%s", ZKRootPath, r.service)
	r.ensurePath(ZKRootPath)
	r.ensurePath(servicePath)

	nodeKey := fmt.Sprintf("%s/node-%d", servicePath, r.port)

	var state NodeState
	var index int64

	exists, _, err := r.zkClient.Exists(nodeKey)
	if err != nil {
		return 0, fmt.Errorf("check node existence failed: %v", err)
	}

	if exists {
		// Recover the index from the existing znode
		data, _, err := r.zkClient.Get(nodeKey)
		if err != nil {
			return 0, fmt.Errorf("get node state failed: %v", err)
		}
		json.Unmarshal(data, &state)
		index = state.NodeIndex

		currentTime := time.Now().UnixMilli()
		// Detect system clock rollback against the registered state
		if currentTime < state.LastTime {
			return 0, fmt.Errorf("clock moved backwards: %d < %d", currentTime, state.LastTime)
		}

		log.Printf("recovered node index %d from zk", index)
	} else {
		// Not registered in ZK, try the local cache first
		cached, err := r.loadLocalCache()
		if err == nil {
			index = cached.NodeIndex
			if time.Now().UnixMilli() < cached.LastTime {
				return 0, fmt.Errorf("clock moved backwards: %d < %d", time.Now().UnixMilli(), cached.LastTime)
			}
			log.Printf("recovered node index %d from local cache", index)
		} else {
			// Nothing found anywhere; derive a fresh index from the port
			index = int64(r.port) % MaxNodeIndex
		}

		now := time.Now().UnixMilli()
		state = NodeState{
			NodeIndex:  index,
			LastTime:   now,
			CreateTime: now,
		}
	}

	// Register or update the state in ZooKeeper
	bytes, _ := json.Marshal(state)
	if exists {
		_, err = r.zkClient.Set(nodeKey, bytes, -1)
	} else {
		_, err = r.zkClient.Create(nodeKey, bytes, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return 0, fmt.Errorf("register or update node state failed: %v", err)
	}

	// Save to a local cache file for recovery without ZooKeeper
	r.saveLocalCache(state)
	return index, nil
}

// NodeID derives the 6-byte UUID node field from the assigned index. The
// locally-administered bit is set so the value can never collide with a
// real IEEE-802 address, and the multicast bit marks it as non-hardware
// per RFC 4122.
func (r *NodeRegistry) NodeID() ruuid.NodeID {
	var node ruuid.NodeID
	node[0] = 0x03 // multicast + locally administered
	node[1] = byte(r.port >> 8)
	binary.BigEndian.PutUint32(node[2:6], uint32(r.nodeIndex))
	return node
}

// scheduledRefresh periodically updates this node's state in ZooKeeper and
// the local cache so a restarted instance can prove its clock moved forward.
func (r *NodeRegistry) scheduledRefresh() {
	ticker := time.NewTicker(3 * time.Second)
	nodeKey := fmt.Sprintf("%s/%s/node-%d", ZKRootPath, r.service, r.port)

	for range ticker.C {
		now := time.Now().UnixMilli()

		if now < r.lastTime {
			log.Printf("clock rollback detected during refresh! local: %d, last: %d", now, r.lastTime)
			continue
		}
		r.lastTime = now

		state := NodeState{
			NodeIndex: r.nodeIndex,
			LastTime:  now,
		}
		data, _ := json.Marshal(state)

		// Ignore errors, ZooKeeper may occasionally be unavailable
		r.zkClient.Set(nodeKey, data, -1)

		r.saveLocalCache(state)
	}
}

// ensurePath creates a ZK path if needed.
func (r *NodeRegistry) ensurePath(path string) {
	exists, _, _ := r.zkClient.Exists(path)
	if !exists {
		r.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

// saveLocalCache saves the given NodeState to a file for local recovery.
func (r *NodeRegistry) saveLocalCache(state NodeState) {
	data, _ := json.Marshal(state)
	fileName := fmt.Sprintf(".ruuid_node_%d", r.port)
	os.WriteFile(fileName, data, 0644)
}

// loadLocalCache loads NodeState from the local cache file, if present.
func (r *NodeRegistry) loadLocalCache() (NodeState, error) {
	fileName := fmt.Sprintf(".ruuid_node_%d", r.port)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return NodeState{}, err
	}
	var state NodeState
	json.Unmarshal(data, &state)
	return state, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Servers) == 0 {
		cfg.Servers = []string{"127.0.0.1:2181"}
	}
	return cfg, nil
}

func main() {
	// NOTE: This program requires a reachable ZooKeeper ensemble.
	// You can use Docker to start one for local testing:
	//   docker run -p 2181:2181 zookeeper
	cfgPath := "zknode.json"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	registry, err := NewNodeRegistry(cfg.Servers, cfg.Service, cfg.Port)
	if err != nil {
		log.Fatal(err)
	}

	gen := ruuid.NewGenerator()
	gen.SetNodeID(registry.NodeID())

	log.Printf("generating v1 UUIDs with node %s", registry.NodeID())
	for i := 0; i < 10; i++ {
		id, err := gen.NewV1()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("  %s (timestamp %d)", id, id.Timestamp())
		time.Sleep(100 * time.Millisecond)
	}
}
